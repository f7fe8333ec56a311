// Package render draws mazes.
//
// # Overview
//
// Every renderer takes a [maze.Grid] plus functional options and produces
// bytes in one output format:
//
//   - [ASCII]: box drawing with "+---+" corners, for terminals and logs
//   - [SVG]: walls as lines, with an optional distance heatmap and path overlay
//   - [PNG]: the same picture rasterized natively with image/png
//   - [PDF]: the SVG converted through rsvg-convert
//
// The [nodelink] subpackage draws the link structure of a maze as a tree
// diagram through Graphviz instead.
//
// # Orientation
//
// Row 0 is drawn at the top of the page, in the same order as mask text and
// [maze.Mask.String], so a mask drawn in a text file renders the way it
// looks on screen. The North side of a cell (row+1) therefore faces down the
// page and the South side faces up.
//
// # Heatmap
//
// [WithDistances] colours every reachable cell by its distance from the
// root. The colour keeps the hue and value of the base colour (see
// [WithBaseColor]) and scales saturation with distance, so the root is pale
// and the farthest cell is fully saturated:
//
//	d := maze.DistancesFrom(render.DefaultRoot(g))
//	svg := render.SVG(g, render.WithDistances(d))
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). [PNG] does not need it.
//
// [nodelink]: github.com/matzehuels/mazegen/pkg/render/nodelink
package render
