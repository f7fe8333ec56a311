package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Option configures a renderer.
type Option func(*renderer)

type renderer struct {
	cellSize  int
	wallWidth int
	distances *maze.Distances
	far       int
	onPath    map[int]bool
	path      []*maze.Cell
	base      colorful.Color
	wall      colorful.Color
	pathColor colorful.Color
}

// Default drawing parameters.
const (
	DefaultCellSize  = 20
	DefaultWallWidth = 2
)

var (
	// DefaultBaseColor is the fully saturated end of the heatmap.
	DefaultBaseColor = colorful.Color{R: 0.12, G: 0.47, B: 0.71}
	defaultWall      = colorful.Color{R: 0.13, G: 0.13, B: 0.13}
	defaultPath      = colorful.Color{R: 0.84, G: 0.15, B: 0.16}
)

// WithCellSize sets the side of a cell in pixels. Values below 4 are ignored.
func WithCellSize(px int) Option {
	return func(r *renderer) {
		if px >= 4 {
			r.cellSize = px
		}
	}
}

// WithWallWidth sets the wall stroke width in pixels.
func WithWallWidth(px int) Option {
	return func(r *renderer) {
		if px > 0 {
			r.wallWidth = px
		}
	}
}

// WithDistances enables the heatmap (SVG, PNG) or distance labels (ASCII).
func WithDistances(d *maze.Distances) Option {
	return func(r *renderer) { r.distances = d }
}

// WithPath overlays a path, usually from [maze.ShortestPath] or [maze.LongestPath].
func WithPath(path []*maze.Cell) Option {
	return func(r *renderer) {
		r.path = path
		r.onPath = make(map[int]bool, len(path))
		for _, c := range path {
			r.onPath[c.Index()] = true
		}
	}
}

// WithBaseColor sets the heatmap base colour.
func WithBaseColor(c colorful.Color) Option {
	return func(r *renderer) { r.base = c }
}

// WithWallColor sets the wall colour.
func WithWallColor(c colorful.Color) Option {
	return func(r *renderer) { r.wall = c }
}

// WithPathColor sets the path overlay colour.
func WithPathColor(c colorful.Color) Option {
	return func(r *renderer) { r.pathColor = c }
}

func newRenderer(opts ...Option) *renderer {
	r := &renderer{
		cellSize:  DefaultCellSize,
		wallWidth: DefaultWallWidth,
		base:      DefaultBaseColor,
		wall:      defaultWall,
		pathColor: defaultPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.distances != nil {
		_, r.far = r.distances.Max()
	}
	return r
}

// ParseColor parses a "#rrggbb" colour for use with the colour options.
func ParseColor(hex string) (colorful.Color, error) {
	return colorful.Hex(hex)
}
