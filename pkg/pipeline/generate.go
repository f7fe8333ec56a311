package pipeline

import (
	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
)

// BuildGrid returns the empty grid described by opts.
func BuildGrid(opts Options) (*maze.Grid, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}
	return buildGrid(&opts)
}

// Generate builds the grid and carves it. It never touches a cache.
func Generate(opts Options) (*maze.Grid, mazeio.Meta, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, mazeio.Meta{}, err
	}
	return generate(&opts)
}

func buildGrid(o *Options) (*maze.Grid, error) {
	if m := o.ParsedMask(); m != nil {
		return maze.NewGridFromMask(m), nil
	}
	g, err := maze.NewGrid(o.Columns, o.Rows, nil)
	if err != nil {
		return nil, mzerr.FromMaze(err)
	}
	return g, nil
}

func generate(o *Options) (*maze.Grid, mazeio.Meta, error) {
	g, err := buildGrid(o)
	if err != nil {
		return nil, mazeio.Meta{}, err
	}
	meta := mazeio.Meta{Algorithm: o.ParsedAlgorithm(), Seed: o.Seed}
	if err := maze.Generate(g, meta.Algorithm, maze.NewRand(o.Seed)); err != nil {
		return nil, mazeio.Meta{}, mzerr.FromMaze(err)
	}
	return g, meta, nil
}
