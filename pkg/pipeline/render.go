package pipeline

import (
	"fmt"

	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/render"
	"github.com/matzehuels/mazegen/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats. The analysis
// supplies the heatmap distances and the path overlay; it may be nil when
// neither is requested.
func Render(g *maze.Grid, meta mazeio.Meta, a *Analysis, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, name := range opts.Formats {
		data, err := RenderFormat(g, meta, a, render.Format(name), opts)
		if err != nil {
			return nil, err
		}
		artifacts[name] = data
	}
	return artifacts, nil
}

// RenderFormat renders a single format. opts must already be validated.
func RenderFormat(g *maze.Grid, meta mazeio.Meta, a *Analysis, format render.Format, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case render.FormatASCII:
		data = []byte(render.ASCII(g, drawOptions(a, opts)...))
	case render.FormatSVG:
		data = render.SVG(g, drawOptions(a, opts)...)
	case render.FormatPNG:
		data, err = render.PNG(g, drawOptions(a, opts)...)
	case render.FormatPDF:
		data, err = render.PDF(g, drawOptions(a, opts)...)
	case render.FormatDOT:
		data = []byte(nodelink.ToDOT(g, treeOptions(a, opts)))
	case render.FormatTree:
		data, err = nodelink.RenderSVG(nodelink.ToDOT(g, treeOptions(a, opts)))
	case render.FormatJSON:
		data, err = mazeio.Marshal(g, meta)
	default:
		return nil, mzerr.New(mzerr.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func drawOptions(a *Analysis, opts Options) []render.Option {
	out := []render.Option{render.WithCellSize(opts.CellSize)}
	if a == nil {
		return out
	}
	if opts.Heatmap {
		out = append(out, render.WithDistances(a.Distances))
	}
	if opts.Path {
		out = append(out, render.WithPath(a.Path))
	}
	return out
}

func treeOptions(a *Analysis, opts Options) nodelink.Options {
	o := nodelink.Options{Heatmap: opts.Heatmap, Detailed: opts.Heatmap}
	if a == nil {
		return o
	}
	o.Root = a.Distances.Root()
	if opts.Path {
		o.Path = a.Path
	}
	return o
}
