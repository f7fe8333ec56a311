package maze

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Grid owns the cells of one maze. Cells live in a flat arena indexed by
// row*columns+col; masked positions hold nil. The shape never changes after
// construction, only cell links do.
//
// The zero value is not usable - use [NewGrid].
type Grid struct {
	columns int
	rows    int
	mask    *Mask
	cells   []*Cell
	size    int
}

// NewGrid allocates a cell for every present position. A nil mask means
// every position is present.
func NewGrid(columns, rows int, mask *Mask) (*Grid, error) {
	if err := checkDimensions(columns, rows); err != nil {
		return nil, err
	}
	if mask != nil && (mask.columns != columns || mask.rows != rows) {
		return nil, fmt.Errorf("%w: mask is %dx%d, grid is %dx%d",
			ErrMaskMismatch, mask.columns, mask.rows, columns, rows)
	}
	g := &Grid{
		columns: columns,
		rows:    rows,
		mask:    mask,
		cells:   make([]*Cell, columns*rows),
	}
	for row := range rows {
		for col := range columns {
			if mask != nil && !mask.Present(col, row) {
				continue
			}
			idx := row*columns + col
			g.cells[idx] = &Cell{grid: g, col: col, row: row, index: idx}
			g.size++
		}
	}
	return g, nil
}

// NewGridFromMask builds a grid sized to mask. The mask must not be nil;
// use [NewGrid] for an unmasked grid.
func NewGridFromMask(mask *Mask) *Grid {
	if mask == nil {
		panic("maze: NewGridFromMask called with nil mask")
	}
	g, _ := NewGrid(mask.columns, mask.rows, mask)
	return g
}

// checkDimensions rejects empty shapes and shapes whose arena index
// would overflow an int.
func checkDimensions(columns, rows int) error {
	if columns < 1 || rows < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, columns, rows)
	}
	if columns > math.MaxInt/rows {
		return fmt.Errorf("%w: %dx%d overflows the cell index", ErrInvalidDimensions, columns, rows)
	}
	return nil
}

// Columns returns the grid width.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Mask returns the grid's mask, or nil when every position is present.
func (g *Grid) Mask() *Mask { return g.mask }

// Size returns the number of present cells.
func (g *Grid) Size() int { return g.size }

// Cell returns the cell at (col, row), or nil when the position is out of
// bounds or masked out.
func (g *Grid) Cell(col, row int) *Cell {
	if !g.inBounds(col, row) {
		return nil
	}
	return g.cells[row*g.columns+col]
}

// CellAt is [Grid.Cell] addressed by coordinate.
func (g *Grid) CellAt(c Coord) *Cell { return g.Cell(c.Col, c.Row) }

// Cells returns the present cells in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.size)
	for _, c := range g.cells {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// HasNorth reports whether the position north of (col, row) holds a cell.
func (g *Grid) HasNorth(col, row int) bool { return g.Cell(col, row+1) != nil }

// HasEast reports whether the position east of (col, row) holds a cell.
func (g *Grid) HasEast(col, row int) bool { return g.Cell(col+1, row) != nil }

// HasSouth reports whether the position south of (col, row) holds a cell.
func (g *Grid) HasSouth(col, row int) bool { return g.Cell(col, row-1) != nil }

// HasWest reports whether the position west of (col, row) holds a cell.
func (g *Grid) HasWest(col, row int) bool { return g.Cell(col-1, row) != nil }

// Neighbour returns the cell one step from (col, row) in direction d.
func (g *Grid) Neighbour(col, row int, d Direction) *Cell {
	dc, dr := d.Delta()
	return g.Cell(col+dc, row+dr)
}

// RandomCell returns a uniformly random present cell. Masked grids delegate
// to [Mask.SampleRandomPresentLocation].
func (g *Grid) RandomCell(rng *rand.Rand) (*Cell, error) {
	if g.size == 0 {
		return nil, ErrEmptyMask
	}
	if g.mask == nil {
		return g.cells[rng.IntN(len(g.cells))], nil
	}
	at, err := g.mask.SampleRandomPresentLocation(rng)
	if err != nil {
		return nil, err
	}
	return g.CellAt(at), nil
}

// LinkCount returns the number of links, counting each symmetric pair once.
func (g *Grid) LinkCount() int {
	n := 0
	for _, c := range g.cells {
		if c != nil {
			n += len(c.links)
		}
	}
	return n / 2
}

// IsConnected reports whether the present cells form one component under the
// neighbour relation, ignoring links.
func (g *Grid) IsConnected() bool {
	return g.reachable(func(c *Cell) []*Cell { return c.NeighboursList() }) == g.size
}

// IsPerfect reports whether the links form a spanning tree over the present
// cells: connected with exactly Size-1 links.
func (g *Grid) IsPerfect() bool {
	if g.size == 0 {
		return false
	}
	return g.LinkCount() == g.size-1 && g.reachable((*Cell).Links) == g.size
}

// Reset removes every link.
func (g *Grid) Reset() {
	for _, c := range g.cells {
		if c != nil {
			c.links = nil
		}
	}
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.columns && row < g.rows
}

func (g *Grid) hasLinks() bool {
	for _, c := range g.cells {
		if c != nil && len(c.links) > 0 {
			return true
		}
	}
	return false
}

func (g *Grid) first() *Cell {
	for _, c := range g.cells {
		if c != nil {
			return c
		}
	}
	return nil
}

// reachable counts cells reachable from the first present cell via next.
func (g *Grid) reachable(next func(*Cell) []*Cell) int {
	start := g.first()
	if start == nil {
		return 0
	}
	seen := make([]bool, len(g.cells))
	seen[start.index] = true
	stack := []*Cell{start}
	n := 1
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range next(c) {
			if !seen[nb.index] {
				seen[nb.index] = true
				stack = append(stack, nb)
				n++
			}
		}
	}
	return n
}
