// Package nodelink draws the link structure of a maze as a tree diagram.
//
// # Overview
//
// A perfect maze is a spanning tree of its grid. This package lays that tree
// out with Graphviz: every present cell becomes a node, every link an edge,
// and edges point away from a root cell so the dot engine ranks cells by
// their distance from it. Mazes with loops still render; the extra links
// show up as edges between cells on the same or adjacent ranks.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Root: g.Cell(0, 0)})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
//   - Root: the cell ranked first (defaults to [render.DefaultRoot])
//   - Path: cells drawn with a thick red outline
//   - Heatmap: fill nodes with the distance colour used by [render.SVG]
//   - Detailed: add the distance to every node label
//
// [render.DefaultRoot]: github.com/matzehuels/mazegen/pkg/render.DefaultRoot
// [render.SVG]: github.com/matzehuels/mazegen/pkg/render.SVG
package nodelink
