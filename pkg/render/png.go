package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// PNG rasterizes the same picture as [SVG] without external tools.
// Absent cells and the margin stay transparent.
func PNG(g *maze.Grid, opts ...Option) ([]byte, error) {
	img := Image(g, opts...)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image rasterizes g into an RGBA image.
func Image(g *maze.Grid, opts ...Option) *image.RGBA {
	r := newRenderer(opts...)
	cs, pad := r.cellSize, r.pad()
	img := image.NewRGBA(image.Rect(0, 0, g.Columns()*cs+2*pad, g.Rows()*cs+2*pad))

	for _, c := range g.Cells() {
		var fill color.Color = color.White
		if col, ok := r.heat(c); ok {
			fill = col
		}
		x, y := pad+c.Col()*cs, pad+c.Row()*cs
		fillRect(img, image.Rect(x, y, x+cs, y+cs), fill)
	}

	// Walls are centred on the boundary, like the SVG stroke.
	lo, hi := r.wallWidth/2, (r.wallWidth+1)/2
	for _, s := range wallSegments(g) {
		x0, y0 := pad+s.x0*cs, pad+s.y0*cs
		x1, y1 := pad+s.x1*cs, pad+s.y1*cs
		fillRect(img, image.Rect(x0-lo, y0-lo, x1+hi, y1+hi), r.wall)
	}

	pw := r.pathWidth()
	plo, phi := pw/2, (pw+1)/2
	for i := 1; i < len(r.path); i++ {
		ax, ay := r.centre(r.path[i-1])
		bx, by := r.centre(r.path[i])
		fillRect(img, image.Rect(min(ax, bx)-plo, min(ay, by)-plo, max(ax, bx)+phi, max(ay, by)+phi), r.pathColor)
	}
	if len(r.path) == 1 {
		x, y := r.centre(r.path[0])
		fillRect(img, image.Rect(x-plo, y-plo, x+phi, y+phi), r.pathColor)
	}
	return img
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}
