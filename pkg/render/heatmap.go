package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Shade returns the heatmap colour of a cell at distance d when the farthest
// cell is at maxDist. Hue and value come from base; saturation grows linearly
// from 0 at the root to 1 at maxDist.
func Shade(base colorful.Color, d, maxDist int) colorful.Color {
	h, _, v := base.Hsv()
	if maxDist <= 0 {
		return colorful.Hsv(h, 0, v)
	}
	s := float64(d) / float64(maxDist)
	s = min(max(s, 0), 1)
	return colorful.Hsv(h, s, v).Clamped()
}

// DefaultRoot returns the middle cell of g, or the first present cell when
// the middle is masked out. It returns nil for a grid without cells.
func DefaultRoot(g *maze.Grid) *maze.Cell {
	if c := g.Cell(g.Columns()/2, g.Rows()/2); c != nil {
		return c
	}
	if cells := g.Cells(); len(cells) > 0 {
		return cells[0]
	}
	return nil
}

// heat returns the fill colour for c and whether it should be filled.
func (r *renderer) heat(c *maze.Cell) (colorful.Color, bool) {
	if r.distances == nil {
		return colorful.Color{}, false
	}
	d, ok := r.distances.Get(c)
	if !ok {
		return colorful.Color{}, false
	}
	return Shade(r.base, d, r.far), true
}
