package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShapes = map[string]func(t testing.TB) *Grid{
	"1x1":   func(t testing.TB) *Grid { return mustGrid(t, 1, 1, nil) },
	"2x1":   func(t testing.TB) *Grid { return mustGrid(t, 2, 1, nil) },
	"1x5":   func(t testing.TB) *Grid { return mustGrid(t, 1, 5, nil) },
	"4x4":   func(t testing.TB) *Grid { return mustGrid(t, 4, 4, nil) },
	"12x7":  func(t testing.TB) *Grid { return mustGrid(t, 12, 7, nil) },
	"strip": func(t testing.TB) *Grid { return NewGridFromMask(mustMask(t, "..\nxx")) },
	"ring":  func(t testing.TB) *Grid { return NewGridFromMask(mustMask(t, "....\n.xx.\n....")) },
	"holes": func(t testing.TB) *Grid {
		return NewGridFromMask(mustMask(t, "......\n.x..x.\n......\n..xx..\n......"))
	},
}

// assertPerfect checks the spanning tree and wall properties of a generated grid.
func assertPerfect(t *testing.T, g *Grid) {
	t.Helper()
	require.Equal(t, g.Size()-1, g.LinkCount(), "link count")
	require.True(t, g.IsPerfect(), "links must form a spanning tree")

	for _, c := range g.Cells() {
		for _, l := range c.Links() {
			require.True(t, l.IsLinked(c), "link %v-%v must be symmetric", c, l)
			adjacent := false
			for _, n := range c.NeighboursList() {
				adjacent = adjacent || n == l
			}
			require.True(t, adjacent, "link %v-%v joins non-neighbours", c, l)
		}
		w := c.Walls()
		for _, d := range Directions {
			n := c.Neighbour(d)
			open := n != nil && c.IsLinked(n)
			require.Equal(t, !open, w.Has(d), "cell %v side %v", c, d)
		}
	}
}

func TestGeneratorsProducePerfectMazes(t *testing.T) {
	for _, algo := range Algorithms() {
		for name, shape := range testShapes {
			t.Run(fmt.Sprintf("%s/%s", algo, name), func(t *testing.T) {
				for seed := range uint64(20) {
					g := shape(t)
					require.NoError(t, Generate(g, algo, NewRand(seed)))
					assertPerfect(t, g)
				}
			})
		}
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	walls := func(g *Grid) []Walls {
		var out []Walls
		for _, c := range g.Cells() {
			out = append(out, c.Walls())
		}
		return out
	}
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			a, b := mustGrid(t, 9, 9, nil), mustGrid(t, 9, 9, nil)
			require.NoError(t, Generate(a, algo, NewRand(99)))
			require.NoError(t, Generate(b, algo, NewRand(99)))
			assert.Equal(t, walls(a), walls(b))
		})
	}
}

func TestSingleCell(t *testing.T) {
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t, 1, 1, nil)
			require.NoError(t, Generate(g, algo, NewRand(1)))

			c := g.Cell(0, 0)
			assert.Zero(t, g.LinkCount())
			assert.Equal(t, WallsAll, c.Walls())
			assert.Empty(t, DeadEnds(g))
			assert.Equal(t, map[Coord]int{{0, 0}: 0}, DistancesFrom(c).Map())
		})
	}
}

func TestTwoByOne(t *testing.T) {
	for _, algo := range []Algorithm{AlgorithmBinaryTree, AlgorithmSidewinder} {
		t.Run(algo.String(), func(t *testing.T) {
			for seed := range uint64(10) {
				g := mustGrid(t, 2, 1, nil)
				require.NoError(t, Generate(g, algo, NewRand(seed)))
				assert.Equal(t, 1, g.LinkCount())
				assert.Equal(t, WallsAll&^WallEast, g.Cell(0, 0).Walls())
				assert.Equal(t, WallsAll&^WallWest, g.Cell(1, 0).Walls())
			}
		})
	}
}

func TestMaskedStripOnlyTouchesPresentCells(t *testing.T) {
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := NewGridFromMask(mustMask(t, "..\nxx"))
			require.NoError(t, Generate(g, algo, NewRand(5)))
			assert.Nil(t, g.Cell(0, 1))
			assert.Nil(t, g.Cell(1, 1))
			assert.True(t, g.Cell(0, 0).IsLinked(g.Cell(1, 0)))
			assert.Equal(t, 1, g.LinkCount())
		})
	}
}

func TestGeneratePreconditions(t *testing.T) {
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			empty := NewGridFromMask(mustMask(t, "xx\nxx"))
			assert.ErrorIs(t, Generate(empty, algo, NewRand(1)), ErrEmptyMask)

			split := NewGridFromMask(mustMask(t, "..x..\n..x.."))
			assert.ErrorIs(t, Generate(split, algo, NewRand(1)), ErrDisconnectedMask)
			assert.Zero(t, split.LinkCount())

			done := mustGrid(t, 3, 3, nil)
			require.NoError(t, Generate(done, algo, NewRand(1)))
			assert.ErrorIs(t, Generate(done, algo, NewRand(1)), ErrAlreadyLinked)

			assert.ErrorIs(t, Generate(mustGrid(t, 2, 2, nil), algo, nil), ErrNilRandom)
		})
	}
}

func TestBiasedAlgorithmsRejectUnsupportedMasks(t *testing.T) {
	// row 1 splits into two segments with no north exit
	text := "...\n.x."
	for _, algo := range Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			g := NewGridFromMask(mustMask(t, text))
			err := Generate(g, algo, NewRand(2))
			switch algo {
			case AlgorithmBinaryTree, AlgorithmSidewinder:
				assert.ErrorIs(t, err, ErrUnsupportedMask)
				assert.Zero(t, g.LinkCount())
			default:
				require.NoError(t, err)
				assertPerfect(t, g)
			}
		})
	}
}

func TestBinaryTreeBias(t *testing.T) {
	g := mustGrid(t, 8, 6, nil)
	require.NoError(t, BinaryTree(g, NewRand(11)))
	for col := range 7 {
		assert.True(t, g.Cell(col, 5).IsLinked(g.Cell(col+1, 5)), "top row is one corridor")
	}
	for row := range 5 {
		assert.True(t, g.Cell(7, row).IsLinked(g.Cell(7, row+1)), "east column is one corridor")
	}
}

func TestSidewinderTopRowCorridor(t *testing.T) {
	g := mustGrid(t, 8, 6, nil)
	require.NoError(t, Sidewinder(g, NewRand(4)))
	for col := range 7 {
		assert.True(t, g.Cell(col, 5).IsLinked(g.Cell(col+1, 5)))
	}
	// each run below the top row closes with one northward link
	for row := range 5 {
		north := 0
		for col := range 8 {
			if g.Cell(col, row).IsLinked(g.Cell(col, row+1)) {
				north++
			}
		}
		assert.Positive(t, north, "row %d", row)
	}
}

func TestRecursiveBacktrackerFrom(t *testing.T) {
	g := mustGrid(t, 6, 6, nil)
	require.NoError(t, RecursiveBacktrackerFrom(g.Cell(3, 3), NewRand(8)))
	assertPerfect(t, g)
	assert.ErrorIs(t, RecursiveBacktrackerFrom(nil, NewRand(8)), ErrForeignCell)
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"binary-tree", AlgorithmBinaryTree},
		{"BinaryTree", AlgorithmBinaryTree},
		{"sidewinder", AlgorithmSidewinder},
		{"Aldous_Broder", AlgorithmAldousBroder},
		{" wilson ", AlgorithmWilson},
		{"hunt and kill", AlgorithmHuntAndKill},
		{"RecursiveBacktracker", AlgorithmRecursiveBacktracker},
		{"backtracker", AlgorithmRecursiveBacktracker},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAlgorithm("prim")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.ErrorIs(t, Generate(mustGrid(t, 2, 2, nil), Algorithm("prim"), NewRand(1)), ErrUnknownAlgorithm)
}

func TestAlgorithmUniform(t *testing.T) {
	assert.True(t, AlgorithmWilson.Uniform())
	assert.True(t, AlgorithmAldousBroder.Uniform())
	assert.False(t, AlgorithmBinaryTree.Uniform())
}
