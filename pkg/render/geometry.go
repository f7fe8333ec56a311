package render

import "github.com/matzehuels/mazegen/pkg/maze"

// Boundaries are addressed in page units: x runs over columns, y over rows,
// with row 0 at the top. A horizontal boundary (x, y) is the top edge of
// the cell at (x, y); a vertical boundary (x, y) is its left edge.

// hWall reports whether the horizontal boundary above page row y is a wall.
func hWall(g *maze.Grid, x, y int) bool {
	if below := g.Cell(x, y); below != nil {
		return below.Walls().Has(maze.South)
	}
	if above := g.Cell(x, y-1); above != nil {
		return above.Walls().Has(maze.North)
	}
	return false
}

// vWall reports whether the vertical boundary left of column x is a wall.
func vWall(g *maze.Grid, x, y int) bool {
	if right := g.Cell(x, y); right != nil {
		return right.Walls().Has(maze.West)
	}
	if left := g.Cell(x-1, y); left != nil {
		return left.Walls().Has(maze.East)
	}
	return false
}

// corner reports whether any cell touches the grid point (x, y).
func corner(g *maze.Grid, x, y int) bool {
	return g.Cell(x-1, y-1) != nil || g.Cell(x, y-1) != nil ||
		g.Cell(x-1, y) != nil || g.Cell(x, y) != nil
}

type segment struct{ x0, y0, x1, y1 int }

// wallSegments lists every wall once, in cell units.
func wallSegments(g *maze.Grid) []segment {
	var segs []segment
	for y := 0; y <= g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			if hWall(g, x, y) {
				segs = append(segs, segment{x, y, x + 1, y})
			}
		}
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x <= g.Columns(); x++ {
			if vWall(g, x, y) {
				segs = append(segs, segment{x, y, x, y + 1})
			}
		}
	}
	return segs
}
