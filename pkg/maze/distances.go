package maze

// Distances maps cells to their link distance from a root. It reflects the
// links at the time of [DistancesFrom] and goes stale once links change.
type Distances struct {
	root *Cell
	dist []int // arena index -> distance, -1 when unreachable
	n    int
}

// DistancesFrom runs a layered breadth-first search over links from root.
// It panics when root is nil.
func DistancesFrom(root *Cell) *Distances {
	g := root.grid
	d := &Distances{root: root, dist: make([]int, len(g.cells))}
	for i := range d.dist {
		d.dist[i] = -1
	}
	d.dist[root.index] = 0
	d.n = 1

	frontier := []*Cell{root}
	for step := 1; len(frontier) > 0; step++ {
		var next []*Cell
		for _, c := range frontier {
			for _, idx := range c.links {
				if d.dist[idx] >= 0 {
					continue
				}
				d.dist[idx] = step
				d.n++
				next = append(next, g.cells[idx])
			}
		}
		frontier = next
	}
	return d
}

// Root returns the cell distances are measured from.
func (d *Distances) Root() *Cell { return d.root }

// Get returns the distance to c and whether c is reachable.
func (d *Distances) Get(c *Cell) (int, bool) {
	if c == nil || c.grid != d.root.grid {
		return 0, false
	}
	v := d.dist[c.index]
	return v, v >= 0
}

// At returns the distance to the cell at (col, row).
func (d *Distances) At(col, row int) (int, bool) {
	return d.Get(d.root.grid.Cell(col, row))
}

// Len returns the number of reachable cells, root included.
func (d *Distances) Len() int { return d.n }

// Max returns the farthest reachable cell and its distance. Ties go to the
// lowest arena index.
func (d *Distances) Max() (*Cell, int) {
	best, far := d.root, 0
	for idx, v := range d.dist {
		if v > far {
			best, far = d.root.grid.cells[idx], v
		}
	}
	return best, far
}

// Cells returns the reachable cells in row-major order.
func (d *Distances) Cells() []*Cell {
	out := make([]*Cell, 0, d.n)
	for idx, v := range d.dist {
		if v >= 0 {
			out = append(out, d.root.grid.cells[idx])
		}
	}
	return out
}

// Map returns the distances keyed by coordinate.
func (d *Distances) Map() map[Coord]int {
	out := make(map[Coord]int, d.n)
	for idx, v := range d.dist {
		if v >= 0 {
			out[d.root.grid.cells[idx].Coord()] = v
		}
	}
	return out
}

// PathTo walks back from goal to the root, at each step moving to the linked
// neighbour with the smallest arena index among those one step closer. The
// result runs root to goal.
func (d *Distances) PathTo(goal *Cell) ([]*Cell, error) {
	if goal == nil || goal.grid != d.root.grid {
		return nil, ErrForeignCell
	}
	dist, ok := d.Get(goal)
	if !ok {
		return nil, ErrUnreachable
	}
	path := make([]*Cell, dist+1)
	path[dist] = goal
	cur := goal
	for i := dist - 1; i >= 0; i-- {
		for _, idx := range cur.links {
			if d.dist[idx] == i {
				cur = d.root.grid.cells[idx]
				break
			}
		}
		path[i] = cur
	}
	return path, nil
}
