package pipeline

import (
	"cmp"
	"context"
	"errors"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
)

// DefaultSurveyTries is the number of mazes generated per algorithm.
const DefaultSurveyTries = 100

// SurveyOptions configures [Survey].
type SurveyOptions struct {
	Columns    int
	Rows       int
	Mask       string
	Tries      int
	Seed       uint64
	Algorithms []maze.Algorithm // empty means all
	Workers    int              // 0 means GOMAXPROCS
}

// SurveyResult holds the averages for one algorithm.
type SurveyResult struct {
	Algorithm          maze.Algorithm `json:"algorithm"`
	Tries              int            `json:"tries"`
	Cells              int            `json:"cells"`
	AverageDeadEnds    float64        `json:"average_dead_ends"`
	DeadEndRatio       float64        `json:"dead_end_ratio"`
	AverageLongestPath float64        `json:"average_longest_path"`
	Unsupported        bool           `json:"unsupported,omitempty"` // mask shape rejected by the algorithm
	Duration           time.Duration  `json:"duration"`
}

type sample struct {
	deadEnds    int
	longestPath int
	elapsed     time.Duration
	unsupported bool
}

// Survey generates Tries mazes per algorithm on the same grid shape and
// compares their average dead-end counts. Every maze gets its own RNG seeded
// from (Seed, algorithm, try), so results do not depend on scheduling.
// Results are sorted by average dead ends, most first.
func Survey(ctx context.Context, opts SurveyOptions) ([]SurveyResult, error) {
	base := Options{Columns: opts.Columns, Rows: opts.Rows, Mask: opts.Mask}
	if err := base.ValidateForGenerate(); err != nil {
		return nil, err
	}
	if opts.Tries <= 0 {
		opts.Tries = DefaultSurveyTries
	}
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}
	algos := opts.Algorithms
	if len(algos) == 0 {
		algos = maze.Algorithms()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	samples := make([][]sample, len(algos))
	for i := range samples {
		samples[i] = make([]sample, opts.Tries)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for ai, algo := range algos {
		for try := 0; try < opts.Tries; try++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, err := surveyOne(&base, algo, surveySeed(opts.Seed, ai, try))
				if err != nil {
					return err
				}
				samples[ai][try] = s
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]SurveyResult, len(algos))
	for ai, algo := range algos {
		results[ai] = summarize(algo, samples[ai], base.Columns, base.Rows, base.ParsedMask())
	}
	slices.SortStableFunc(results, func(a, b SurveyResult) int {
		if a.Unsupported != b.Unsupported {
			if a.Unsupported {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(b.AverageDeadEnds, a.AverageDeadEnds); c != 0 {
			return c
		}
		return cmp.Compare(a.Algorithm, b.Algorithm)
	})
	return results, nil
}

func surveyOne(base *Options, algo maze.Algorithm, seed uint64) (sample, error) {
	grid, err := buildGrid(base)
	if err != nil {
		return sample{}, err
	}
	start := time.Now()
	if err := maze.Generate(grid, algo, maze.NewRand(seed)); err != nil {
		if errors.Is(err, maze.ErrUnsupportedMask) {
			return sample{unsupported: true}, nil
		}
		return sample{}, mzerr.FromMaze(err)
	}
	elapsed := time.Since(start)
	path, err := maze.LongestPath(grid)
	if err != nil {
		return sample{}, mzerr.FromMaze(err)
	}
	return sample{
		deadEnds:    len(maze.DeadEnds(grid)),
		longestPath: len(path),
		elapsed:     elapsed,
	}, nil
}

// surveySeed mixes the survey seed with the task coordinates (splitmix64).
func surveySeed(seed uint64, algo, try int) uint64 {
	z := seed + uint64(algo)<<32 + uint64(try) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func summarize(algo maze.Algorithm, samples []sample, columns, rows int, mask *maze.Mask) SurveyResult {
	cells := columns * rows
	if mask != nil {
		cells = mask.Count()
	}
	res := SurveyResult{Algorithm: algo, Tries: len(samples), Cells: cells}
	var deadEnds, longest int
	for _, s := range samples {
		if s.unsupported {
			res.Unsupported = true
			return res
		}
		deadEnds += s.deadEnds
		longest += s.longestPath
		res.Duration += s.elapsed
	}
	n := float64(len(samples))
	res.AverageDeadEnds = float64(deadEnds) / n
	res.AverageLongestPath = float64(longest) / n
	if cells > 0 {
		res.DeadEndRatio = res.AverageDeadEnds / float64(cells)
	}
	return res
}
