package maze

import (
	"fmt"
	"slices"
)

// Cell is one lattice position of a [Grid]. Its neighbours are computed from
// the grid on demand; its links are the passages carved so far, held as a
// sorted set of arena indices.
type Cell struct {
	grid  *Grid
	col   int
	row   int
	index int
	links []int
}

// Neighbours holds the present neighbours of a cell; missing directions are nil.
type Neighbours struct {
	North, East, South, West *Cell
}

// Get returns the neighbour in direction d.
func (n Neighbours) Get(d Direction) *Cell {
	switch d {
	case North:
		return n.North
	case East:
		return n.East
	case South:
		return n.South
	case West:
		return n.West
	}
	return nil
}

// Col returns the cell's column.
func (c *Cell) Col() int { return c.col }

// Row returns the cell's row.
func (c *Cell) Row() int { return c.row }

// Coord returns the cell's position, which is also its identity.
func (c *Cell) Coord() Coord { return Coord{Col: c.col, Row: c.row} }

// Index returns the cell's arena index, row*columns+col.
func (c *Cell) Index() int { return c.index }

func (c *Cell) String() string { return c.Coord().String() }

// Neighbour returns the present cell in direction d, or nil.
func (c *Cell) Neighbour(d Direction) *Cell { return c.grid.Neighbour(c.col, c.row, d) }

// Neighbours returns the four neighbour slots.
func (c *Cell) Neighbours() Neighbours {
	return Neighbours{
		North: c.Neighbour(North),
		East:  c.Neighbour(East),
		South: c.Neighbour(South),
		West:  c.Neighbour(West),
	}
}

// NeighboursList returns the present neighbours in North, East, South, West order.
func (c *Cell) NeighboursList() []*Cell {
	out := make([]*Cell, 0, 4)
	for _, d := range Directions {
		if n := c.Neighbour(d); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Link opens a passage to other. With bidirectional set, other links back.
// Linking nil or a cell of another grid panics.
func (c *Cell) Link(other *Cell, bidirectional bool) {
	c.mustOwn(other)
	if i, found := slices.BinarySearch(c.links, other.index); !found {
		c.links = slices.Insert(c.links, i, other.index)
	}
	if bidirectional {
		other.Link(c, false)
	}
}

// Unlink closes the passage to other. With bidirectional set, other drops its
// link back too.
func (c *Cell) Unlink(other *Cell, bidirectional bool) {
	c.mustOwn(other)
	if i, found := slices.BinarySearch(c.links, other.index); found {
		c.links = slices.Delete(c.links, i, i+1)
	}
	if bidirectional {
		other.Unlink(c, false)
	}
}

// Links returns the linked cells ordered by arena index.
func (c *Cell) Links() []*Cell {
	out := make([]*Cell, len(c.links))
	for i, idx := range c.links {
		out[i] = c.grid.cells[idx]
	}
	return out
}

// IsLinked reports whether c has a passage to other.
func (c *Cell) IsLinked(other *Cell) bool {
	if other == nil || other.grid != c.grid {
		return false
	}
	_, found := slices.BinarySearch(c.links, other.index)
	return found
}

// Degree returns the number of links.
func (c *Cell) Degree() int { return len(c.links) }

// Walls returns the closed sides of c. A side is open only when a neighbour
// exists in that direction and is linked.
func (c *Cell) Walls() Walls {
	w := WallsAll
	for _, d := range Directions {
		if n := c.Neighbour(d); n != nil && c.IsLinked(n) {
			w &^= d.Wall()
		}
	}
	return w
}

func (c *Cell) mustOwn(other *Cell) {
	if other == nil {
		panic("maze: link to nil cell")
	}
	if other.grid != c.grid {
		panic(fmt.Sprintf("maze: cell %s belongs to a different grid", other))
	}
}
