package maze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMask(t testing.TB, text string) *Mask {
	t.Helper()
	m, err := ParseMaskString(text)
	require.NoError(t, err)
	return m
}

func mustGrid(t testing.TB, columns, rows int, mask *Mask) *Grid {
	t.Helper()
	g, err := NewGrid(columns, rows, mask)
	require.NoError(t, err)
	return g
}

func TestNewGrid(t *testing.T) {
	g := mustGrid(t, 4, 3, nil)
	assert.Equal(t, 4, g.Columns())
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 12, g.Size())
	assert.Nil(t, g.Mask())

	for _, c := range g.Cells() {
		assert.Same(t, c, g.Cell(c.Col(), c.Row()))
		assert.Equal(t, c.Row()*4+c.Col(), c.Index())
	}
}

func TestNewGridErrors(t *testing.T) {
	_, err := NewGrid(0, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	m, err := NewMask(3, 3)
	require.NoError(t, err)
	_, err = NewGrid(3, 4, m)
	assert.ErrorIs(t, err, ErrMaskMismatch)

	_, err = NewGrid(math.MaxInt/2, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions, "arena index overflow")
	_, err = NewGrid(math.MaxInt, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewGridFromNilMask(t *testing.T) {
	assert.Panics(t, func() { NewGridFromMask(nil) })
}

func TestGridMaskedCells(t *testing.T) {
	g := NewGridFromMask(mustMask(t, "..\nxx"))
	assert.Equal(t, 2, g.Size())
	assert.NotNil(t, g.Cell(0, 0))
	assert.NotNil(t, g.Cell(1, 0))
	assert.Nil(t, g.Cell(0, 1))
	assert.Nil(t, g.Cell(1, 1))
	assert.Nil(t, g.Cell(-1, 0))
	assert.Nil(t, g.Cell(0, 5))
	assert.Len(t, g.Cells(), 2)
}

func TestGridHasDirections(t *testing.T) {
	// row 1 is the second line, north of row 0
	g := NewGridFromMask(mustMask(t, "...\n.x."))
	tests := []struct {
		col, row                 int
		north, east, south, west bool
	}{
		{0, 0, true, true, false, false},
		{1, 0, false, true, false, true},
		{2, 0, true, false, false, true},
		{0, 1, false, false, true, false},
		{2, 1, false, false, true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.north, g.HasNorth(tt.col, tt.row), "north of (%d,%d)", tt.col, tt.row)
		assert.Equal(t, tt.east, g.HasEast(tt.col, tt.row), "east of (%d,%d)", tt.col, tt.row)
		assert.Equal(t, tt.south, g.HasSouth(tt.col, tt.row), "south of (%d,%d)", tt.col, tt.row)
		assert.Equal(t, tt.west, g.HasWest(tt.col, tt.row), "west of (%d,%d)", tt.col, tt.row)
	}
}

func TestGridRandomCell(t *testing.T) {
	rng := NewRand(3)

	plain := mustGrid(t, 3, 3, nil)
	masked := NewGridFromMask(mustMask(t, "x.x\n.x."))
	for range 200 {
		c, err := plain.RandomCell(rng)
		require.NoError(t, err)
		require.NotNil(t, c)

		c, err = masked.RandomCell(rng)
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Same(t, c, masked.Cell(c.Col(), c.Row()))
	}

	empty := NewGridFromMask(mustMask(t, "xx"))
	_, err := empty.RandomCell(rng)
	assert.ErrorIs(t, err, ErrEmptyMask)
}

func TestGridIsConnected(t *testing.T) {
	assert.True(t, mustGrid(t, 5, 5, nil).IsConnected())
	assert.True(t, NewGridFromMask(mustMask(t, "....\n.xx.\n....")).IsConnected())
	assert.False(t, NewGridFromMask(mustMask(t, ".x.")).IsConnected())
	assert.False(t, NewGridFromMask(mustMask(t, ".x\nx.")).IsConnected())
}

func TestGridReset(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	require.NoError(t, Generate(g, AlgorithmWilson, NewRand(1)))
	require.Equal(t, 8, g.LinkCount())
	g.Reset()
	assert.Zero(t, g.LinkCount())
	assert.False(t, g.IsPerfect())
}
