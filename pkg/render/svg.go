package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// SVG draws g as a standalone SVG document. Present cells are filled white,
// or with their heatmap colour under [WithDistances]; walls are square-capped
// lines and a [WithPath] overlay is a polyline through cell centres.
func SVG(g *maze.Grid, opts ...Option) []byte {
	r := newRenderer(opts...)
	cs, pad := r.cellSize, r.pad()
	w := g.Columns()*cs + 2*pad
	h := g.Rows()*cs + 2*pad

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)

	buf.WriteString(`  <g class="cells" stroke="none">` + "\n")
	for _, c := range g.Cells() {
		fill := "#ffffff"
		if col, ok := r.heat(c); ok {
			fill = col.Hex()
		}
		fmt.Fprintf(&buf, `    <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			pad+c.Col()*cs, pad+c.Row()*cs, cs, cs, fill)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g class="walls" stroke="%s" stroke-width="%d" stroke-linecap="square">`+"\n",
		r.wall.Hex(), r.wallWidth)
	for _, s := range wallSegments(g) {
		fmt.Fprintf(&buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n",
			pad+s.x0*cs, pad+s.y0*cs, pad+s.x1*cs, pad+s.y1*cs)
	}
	buf.WriteString("  </g>\n")

	if len(r.path) > 0 {
		points := make([]string, len(r.path))
		for i, c := range r.path {
			x, y := r.centre(c)
			points[i] = fmt.Sprintf("%d,%d", x, y)
		}
		fmt.Fprintf(&buf, `  <polyline class="path" points="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			strings.Join(points, " "), r.pathColor.Hex(), r.pathWidth())
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// PDF renders g as SVG and converts it with rsvg-convert.
func PDF(g *maze.Grid, opts ...Option) ([]byte, error) {
	return ToPDF(SVG(g, opts...))
}

func (r *renderer) pad() int { return r.cellSize / 2 }

func (r *renderer) pathWidth() int { return max(r.cellSize/5, 1) }

func (r *renderer) centre(c *maze.Cell) (int, int) {
	half := r.cellSize / 2
	return r.pad() + c.Col()*r.cellSize + half, r.pad() + c.Row()*r.cellSize + half
}
