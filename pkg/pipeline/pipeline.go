// Package pipeline provides the maze pipeline shared by the CLI and the
// HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: build the grid from dimensions or a mask, carve it with an
//     algorithm and a seeded RNG
//  2. Analyze: distances from a root, the longest path, dead ends, tile kinds
//  3. Render: produce artifacts (ASCII, SVG, PNG, PDF, DOT, tree, JSON)
//
// Generation is deterministic in (dimensions, mask, algorithm, seed), so the
// [Runner] caches the generated maze document and every rendered artifact.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Columns:   20,
//	    Rows:      10,
//	    Algorithm: "wilson",
//	    Formats:   []string{"svg", "ascii"},
//	    Heatmap:   true,
//	})
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	g, meta, err := pipeline.Generate(opts)
//	analysis, err := pipeline.Analyze(g, nil)
//	artifacts, err := pipeline.Render(g, meta, analysis, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/cache"
	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultColumns and DefaultRows size the grid when no mask is given.
	DefaultColumns = 20
	DefaultRows    = 20

	// DefaultSeed replaces a zero seed so results stay reproducible.
	DefaultSeed = uint64(42)

	// DefaultAlgorithm is the generator used when none is named.
	DefaultAlgorithm = maze.AlgorithmRecursiveBacktracker

	// DefaultCellSize is the cell side in pixels for SVG, PNG and PDF.
	DefaultCellSize = render.DefaultCellSize
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Columns   int    `json:"columns,omitempty"`
	Rows      int    `json:"rows,omitempty"`
	Mask      string `json:"mask,omitempty"` // text diagram, overrides Columns and Rows
	Algorithm string `json:"algorithm,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
	Refresh   bool   `json:"refresh,omitempty"`

	// Analyze options
	Root *maze.Coord `json:"root,omitempty"` // distance root, nil for the middle cell

	// Render options
	Formats  []string `json:"formats,omitempty"`
	CellSize int      `json:"cell_size,omitempty"`
	Heatmap  bool     `json:"heatmap,omitempty"`
	Path     bool     `json:"path,omitempty"` // overlay the longest path

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	mask      *maze.Mask
	algorithm maze.Algorithm
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Grid *maze.Grid
	Meta mazeio.Meta

	// MazeHash is the content hash of the maze document.
	MazeHash string

	Analysis *Analysis

	// Artifacts contains rendered outputs keyed by format name.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cells        int
	Links        int
	GenerateTime time.Duration
	AnalyzeTime  time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the maze came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks inputs and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate parses the mask and algorithm and fills generation defaults.
func (o *Options) ValidateForGenerate() error {
	if o.Mask != "" {
		if err := mzerr.ValidateMaskText(o.Mask); err != nil {
			return err
		}
		m, err := maze.ParseMaskString(o.Mask)
		if err != nil {
			return mzerr.FromMaze(err)
		}
		o.mask = m
		o.Columns, o.Rows = m.Columns(), m.Rows()
	}
	if o.Columns == 0 && o.Rows == 0 {
		o.Columns, o.Rows = DefaultColumns, DefaultRows
	}
	if err := mzerr.ValidateDimensions(o.Columns, o.Rows); err != nil {
		return err
	}

	if o.Algorithm == "" {
		o.Algorithm = string(DefaultAlgorithm)
	}
	algo, err := maze.ParseAlgorithm(o.Algorithm)
	if err != nil {
		return mzerr.Wrap(mzerr.ErrCodeInvalidAlgorithm, err, "unknown algorithm %q", o.Algorithm)
	}
	o.algorithm = algo
	o.Algorithm = string(algo)

	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	o.setLogger()
	return nil
}

// ValidateForRender normalizes format names and fills render defaults.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{string(render.FormatSVG)}
	}
	seen := make(map[string]bool, len(o.Formats))
	formats := make([]string, 0, len(o.Formats))
	for _, name := range o.Formats {
		f, err := render.ParseFormat(name)
		if err != nil {
			return mzerr.Wrap(mzerr.ErrCodeInvalidFormat, err, "invalid format %q", name)
		}
		if !seen[string(f)] {
			seen[string(f)] = true
			formats = append(formats, string(f))
		}
	}
	o.Formats = formats

	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.CellSize < 4 || o.CellSize > 200 {
		return mzerr.New(mzerr.ErrCodeInvalidInput, "cell size must be between 4 and 200, got %d", o.CellSize)
	}
	o.setLogger()
	return nil
}

// ParsedAlgorithm returns the canonical algorithm after validation.
func (o *Options) ParsedAlgorithm() maze.Algorithm { return o.algorithm }

// ParsedMask returns the mask after validation, or nil.
func (o *Options) ParsedMask() *maze.Mask { return o.mask }

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// MazeKeyOpts returns cache key options for maze generation.
func (o *Options) MazeKeyOpts() cache.MazeKeyOpts {
	mask := ""
	if o.mask != nil {
		mask = o.mask.String()
	}
	return cache.MazeKeyOpts{
		Columns:   o.Columns,
		Rows:      o.Rows,
		Mask:      mask,
		Algorithm: o.Algorithm,
		Seed:      o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	root := ""
	if o.Root != nil {
		root = o.Root.String()
	}
	return cache.ArtifactKeyOpts{
		Format:   format,
		CellSize: o.CellSize,
		Heatmap:  o.Heatmap,
		Path:     o.Path,
		Root:     root,
	}
}
