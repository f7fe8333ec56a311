package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/cache"
	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/observability"
	"github.com/matzehuels/mazegen/pkg/render"
)

// Key types reported to cache hooks.
const (
	keyTypeMaze     = string(cache.KindMaze)
	keyTypeArtifact = string(cache.KindArtifact)
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → analyze → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	g, meta, genHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	result.Meta = meta
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Cells = g.Size()
	result.Stats.Links = g.LinkCount()
	result.CacheInfo.GenerateHit = genHit

	if data, err := mazeio.Marshal(g, meta); err == nil {
		result.MazeHash = cache.Hash(data)
	}

	r.Logger.Info("generated maze",
		"algorithm", meta.Algorithm,
		"seed", meta.Seed,
		"cells", g.Size(),
		"cached", genHit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Analyze
	analyzeStart := time.Now()
	analysis, err := r.Analyze(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis
	result.Stats.AnalyzeTime = time.Since(analyzeStart)

	r.Logger.Debug("analyzed maze",
		"root", analysis.Root,
		"max_distance", analysis.MaxDistance,
		"dead_ends", analysis.DeadEnds,
		"longest_path", len(analysis.LongestPath))

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, meta, analysis, result.MazeHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo generates a maze with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*maze.Grid, mazeio.Meta, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, mazeio.Meta{}, false, err
	}

	cacheKey := r.Keyer.MazeKey(opts.MazeKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			g, meta, err := mazeio.Unmarshal(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeMaze)
				return g, meta, true, nil
			}
			opts.Logger.Warn("discarding unreadable cached maze", "key", cacheKey, "error", err)
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "key", cacheKey, "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeMaze)
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnGenerateStart(ctx, opts.Algorithm, opts.Columns*opts.Rows)
	g, meta, err := generate(&opts)
	hooks.OnGenerateComplete(ctx, opts.Algorithm, cellCount(g), time.Since(start), err)
	if err != nil {
		return nil, mazeio.Meta{}, false, err
	}

	if data, err := mazeio.Marshal(g, meta); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.MazeTTL); err != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeMaze, len(data))
		}
	}

	return g, meta, false, nil
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*maze.Grid, mazeio.Meta, error) {
	g, meta, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return g, meta, err
}

// Analyze runs the analysis stage. It is cheap enough that it is never cached.
func (r *Runner) Analyze(ctx context.Context, g *maze.Grid, opts Options) (*Analysis, error) {
	start := time.Now()
	a, err := Analyze(g, opts.Root)
	if err != nil {
		return nil, err
	}
	observability.Pipeline().OnAnalyzeComplete(ctx, g.Size(), a.DeadEnds, time.Since(start))
	return a, nil
}

// RenderWithCacheInfo renders artifacts with caching and returns true when
// every requested format came from the cache. Only missing formats are rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *maze.Grid, meta mazeio.Meta, a *Analysis, mazeHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	if mazeHash == "" {
		data, err := mazeio.Marshal(g, meta)
		if err != nil {
			return nil, false, fmt.Errorf("serialize maze for cache key: %w", err)
		}
		mazeHash = cache.Hash(data)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(mazeHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, missing)
	for _, format := range missing {
		data, err := RenderFormat(g, meta, a, render.Format(format), opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
			return nil, false, err
		}
		artifacts[format] = data

		cacheKey := r.Keyer.ArtifactKey(mazeHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}
	hooks.OnRenderComplete(ctx, missing, time.Since(start), nil)

	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *maze.Grid, meta mazeio.Meta, a *Analysis, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, meta, a, "", opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func cellCount(g *maze.Grid) int {
	if g == nil {
		return 0
	}
	return g.Size()
}
