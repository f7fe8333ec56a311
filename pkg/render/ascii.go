package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// ASCII draws g with "+---+" box characters. Masked cells are left blank.
// [WithDistances] labels reachable cells with their distance in base 36
// (wrapping past "z"); [WithPath] marks path cells with "*" and wins over
// labels. Trailing spaces are trimmed from every line.
func ASCII(g *maze.Grid, opts ...Option) string {
	r := newRenderer(opts...)
	var b strings.Builder
	line := func(s string) {
		b.WriteString(strings.TrimRight(s, " "))
		b.WriteByte('\n')
	}

	for y := 0; y <= g.Rows(); y++ {
		var top strings.Builder
		for x := 0; x <= g.Columns(); x++ {
			top.WriteString(pick(corner(g, x, y), "+", " "))
			if x < g.Columns() {
				top.WriteString(pick(hWall(g, x, y), "---", "   "))
			}
		}
		line(top.String())

		if y == g.Rows() {
			break
		}
		var body strings.Builder
		for x := 0; x <= g.Columns(); x++ {
			body.WriteString(pick(vWall(g, x, y), "|", " "))
			if x < g.Columns() {
				body.WriteString(" " + r.label(g.Cell(x, y)) + " ")
			}
		}
		line(body.String())
	}
	return b.String()
}

func (r *renderer) label(c *maze.Cell) string {
	if c == nil {
		return " "
	}
	if r.onPath[c.Index()] {
		return "*"
	}
	if r.distances != nil {
		if d, ok := r.distances.Get(c); ok {
			return strconv.FormatInt(int64(d%36), 36)
		}
	}
	return " "
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
