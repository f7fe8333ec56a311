package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPathProperties(t *testing.T) {
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t, 10, 8, nil)
			require.NoError(t, Generate(g, algo, NewRand(17)))

			root, goal := g.Cell(0, 0), g.Cell(9, 7)
			path, err := ShortestPath(root, goal)
			require.NoError(t, err)
			require.NotEmpty(t, path)
			assert.Same(t, root, path[0])
			assert.Same(t, goal, path[len(path)-1])

			d := DistancesFrom(root)
			for i := 1; i < len(path); i++ {
				require.True(t, path[i-1].IsLinked(path[i]))
				prev, _ := d.Get(path[i-1])
				cur, _ := d.Get(path[i])
				require.Equal(t, prev+1, cur)
			}
		})
	}
}

func TestShortestPathTrivial(t *testing.T) {
	g := mustGrid(t, 2, 2, nil)
	c := g.Cell(1, 1)
	path, err := ShortestPath(c, c)
	require.NoError(t, err)
	assert.Equal(t, []*Cell{c}, path)

	_, err = ShortestPath(c, mustGrid(t, 2, 2, nil).Cell(0, 0))
	assert.ErrorIs(t, err, ErrForeignCell)
	_, err = ShortestPath(c, nil)
	assert.ErrorIs(t, err, ErrForeignCell)
}

func TestShortestPathTieBreak(t *testing.T) {
	// a cycle gives the goal two predecessors at the same distance
	g := mustGrid(t, 2, 2, nil)
	a, b, c, d := g.Cell(0, 0), g.Cell(1, 0), g.Cell(0, 1), g.Cell(1, 1)
	a.Link(b, true)
	a.Link(c, true)
	b.Link(d, true)
	c.Link(d, true)

	for range 5 {
		path, err := ShortestPath(a, d)
		require.NoError(t, err)
		assert.Equal(t, []*Cell{a, b, d}, path)
	}
}

// diameter computes the longest shortest path by BFS from every cell.
func diameter(g *Grid) int {
	best := 0
	for _, c := range g.Cells() {
		_, far := DistancesFrom(c).Max()
		best = max(best, far)
	}
	return best
}

func TestLongestPathMatchesDiameter(t *testing.T) {
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			for seed := range uint64(25) {
				g := mustGrid(t, 4, 4, nil)
				require.NoError(t, Generate(g, algo, NewRand(seed)))

				path, err := LongestPath(g)
				require.NoError(t, err)
				assert.Equal(t, diameter(g), len(path)-1, "seed %d", seed)
				assert.Equal(t, 1, path[0].Degree(), "start is a leaf")
				assert.Equal(t, 1, path[len(path)-1].Degree(), "end is a leaf")
			}
		})
	}
}

func TestLongestPathMasked(t *testing.T) {
	g := NewGridFromMask(mustMask(t, "x...\n....\n...x"))
	require.NoError(t, Generate(g, AlgorithmHuntAndKill, NewRand(3)))
	path, err := LongestPath(g)
	require.NoError(t, err)
	assert.Equal(t, diameter(g), len(path)-1)

	_, err = LongestPath(NewGridFromMask(mustMask(t, "xx")))
	assert.ErrorIs(t, err, ErrEmptyMask)
}

func TestLongestPathSingleCell(t *testing.T) {
	g := mustGrid(t, 1, 1, nil)
	path, err := LongestPath(g)
	require.NoError(t, err)
	assert.Equal(t, []*Cell{g.Cell(0, 0)}, path)
}

func TestDeadEnds(t *testing.T) {
	g := mustGrid(t, 3, 1, nil)
	assert.Empty(t, DeadEnds(g), "unlinked cells have degree 0")

	g.Cell(0, 0).Link(g.Cell(1, 0), true)
	g.Cell(1, 0).Link(g.Cell(2, 0), true)
	assert.Equal(t, []*Cell{g.Cell(0, 0), g.Cell(2, 0)}, DeadEnds(g))

	for _, algo := range Algorithms() {
		m := mustGrid(t, 7, 7, nil)
		require.NoError(t, Generate(m, algo, NewRand(5)))
		for _, c := range DeadEnds(m) {
			assert.Equal(t, 1, c.Degree())
			assert.Equal(t, KindThreeWall, TileFor(c.Walls()).Kind())
		}
	}
}
