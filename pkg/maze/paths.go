package maze

// ShortestPath returns the link path from root to goal, both included.
func ShortestPath(root, goal *Cell) ([]*Cell, error) {
	if root == nil || goal == nil || root.grid != goal.grid {
		return nil, ErrForeignCell
	}
	return DistancesFrom(root).PathTo(goal)
}

// LongestPath finds the farthest cell A from the first present cell, then
// the farthest cell B from A, and returns the path from A to B. On a perfect
// maze this is a diameter of the tree.
func LongestPath(g *Grid) ([]*Cell, error) {
	start := g.first()
	if start == nil {
		return nil, ErrEmptyMask
	}
	a, _ := DistancesFrom(start).Max()
	fromA := DistancesFrom(a)
	b, _ := fromA.Max()
	return fromA.PathTo(b)
}

// DeadEnds returns the cells with exactly one link, in row-major order.
func DeadEnds(g *Grid) []*Cell {
	var out []*Cell
	for _, c := range g.cells {
		if c != nil && len(c.links) == 1 {
			out = append(out, c)
		}
	}
	return out
}
