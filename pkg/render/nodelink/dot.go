package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/render"
)

// Options configures tree diagram generation.
type Options struct {
	// Root is the top of the tree. Nil means [render.DefaultRoot].
	Root *maze.Cell
	// Path cells are outlined.
	Path []*maze.Cell
	// Heatmap fills nodes by distance from Root.
	Heatmap bool
	// Detailed adds the distance to node labels.
	Detailed bool
}

// ToDOT converts the links of g to Graphviz DOT source. Each link becomes
// exactly one edge, directed from the cell nearer Root. Cells unreachable
// from Root are emitted as isolated nodes.
func ToDOT(g *maze.Grid, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, width=0.5, fixedsize=true];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	root := opts.Root
	if root == nil {
		root = render.DefaultRoot(g)
	}
	if root == nil {
		buf.WriteString("}\n")
		return buf.String()
	}
	dist := maze.DistancesFrom(root)
	_, far := dist.Max()

	onPath := make(map[int]bool, len(opts.Path))
	for _, c := range opts.Path {
		onPath[c.Index()] = true
	}

	for _, c := range g.Cells() {
		d, reachable := dist.Get(c)
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(c, d, reachable, opts.Detailed))}
		if opts.Heatmap && reachable {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", render.Shade(render.DefaultBaseColor, d, far).Hex()))
		}
		if !reachable {
			attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey")
		}
		if onPath[c.Index()] {
			attrs = append(attrs, "color=\"#d62728\"", "penwidth=3")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range g.Cells() {
		for _, n := range c.Links() {
			if n.Index() < c.Index() && n.IsLinked(c) {
				continue
			}
			from, to := orient(dist, c, n)
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(from), nodeID(to))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c *maze.Cell) string {
	return fmt.Sprintf("c%d_%d", c.Col(), c.Row())
}

func fmtLabel(c *maze.Cell, d int, reachable, detailed bool) string {
	label := fmt.Sprintf("%d,%d", c.Col(), c.Row())
	if !detailed {
		return label
	}
	if !reachable {
		return label + "\n-"
	}
	return label + "\n" + strconv.Itoa(d)
}

// orient points an edge away from the root. Ties keep arena order.
func orient(dist *maze.Distances, a, b *maze.Cell) (*maze.Cell, *maze.Cell) {
	da, okA := dist.Get(a)
	db, okB := dist.Get(b)
	if okB && (!okA || db < da) {
		return b, a
	}
	return a, b
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is [RenderSVG] with a caller supplied context.
func RenderSVGContext(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox swaps Graphviz's point-sized svg header for a pixel-sized one.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
