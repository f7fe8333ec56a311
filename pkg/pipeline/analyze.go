package pipeline

import (
	"fmt"

	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/render"
)

// Analysis summarizes the structure of a generated maze.
type Analysis struct {
	Root        maze.Coord     `json:"root"`
	Farthest    maze.Coord     `json:"farthest"`
	MaxDistance int            `json:"max_distance"`
	Reachable   int            `json:"reachable"`
	LongestPath []maze.Coord   `json:"longest_path"`
	DeadEnds    int            `json:"dead_ends"`
	TileKinds   map[string]int `json:"tile_kinds"`

	// Distances and Path keep the cell-level results for renderers.
	Distances *maze.Distances `json:"-"`
	Path      []*maze.Cell    `json:"-"`
}

// Analyze measures g from root, or from the middle cell when root is nil.
func Analyze(g *maze.Grid, root *maze.Coord) (*Analysis, error) {
	if g.Size() == 0 {
		return nil, mzerr.FromMaze(maze.ErrEmptyMask)
	}

	start := render.DefaultRoot(g)
	if root != nil {
		start = g.CellAt(*root)
		if start == nil {
			return nil, mzerr.Wrap(mzerr.ErrCodeInvalidInput,
				fmt.Errorf("%w: %s", maze.ErrForeignCell, *root), "root %s is not a cell of the maze", *root)
		}
	}

	dist := maze.DistancesFrom(start)
	far, maxDist := dist.Max()

	path, err := maze.LongestPath(g)
	if err != nil {
		return nil, mzerr.FromMaze(err)
	}

	a := &Analysis{
		Root:        start.Coord(),
		Farthest:    far.Coord(),
		MaxDistance: maxDist,
		Reachable:   dist.Len(),
		LongestPath: coords(path),
		DeadEnds:    len(maze.DeadEnds(g)),
		TileKinds:   tileKinds(g),
		Distances:   dist,
		Path:        path,
	}
	return a, nil
}

func coords(cells []*maze.Cell) []maze.Coord {
	out := make([]maze.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Coord()
	}
	return out
}

func tileKinds(g *maze.Grid) map[string]int {
	counts := make(map[string]int)
	for _, c := range g.Cells() {
		counts[maze.TileFor(c.Walls()).Kind().String()]++
	}
	return counts
}
