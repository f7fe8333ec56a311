package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
)

var (
	// ErrInvalidLink is returned when a document links a missing cell or two
	// cells that are not neighbours.
	ErrInvalidLink = errors.New("invalid link")

	// ErrWallsMismatch is returned when a stored wall code disagrees with the
	// cell's links.
	ErrWallsMismatch = errors.New("wall code does not match links")

	// ErrInvalidCell is returned when a document lists a cell that the mask
	// marks absent, or lists it twice.
	ErrInvalidCell = errors.New("invalid cell")
)

// Decode rebuilds a grid and its links from a [Document].
// Dimensions are held to the same limits as generation, so documents from
// files, caches or archives cannot request an oversized arena.
func Decode(doc Document) (*maze.Grid, Meta, error) {
	if err := mzerr.ValidateDimensions(doc.Columns, doc.Rows); err != nil {
		return nil, Meta{}, fmt.Errorf("%w: %w", maze.ErrInvalidDimensions, err)
	}
	var mask *maze.Mask
	if len(doc.Mask) > 0 {
		m, err := maze.ParseMaskString(strings.Join(doc.Mask, "\n"))
		if err != nil {
			return nil, Meta{}, fmt.Errorf("mask: %w", err)
		}
		mask = m
	}
	g, err := maze.NewGrid(doc.Columns, doc.Rows, mask)
	if err != nil {
		return nil, Meta{}, err
	}

	seen := make(map[maze.Coord]bool, len(doc.Cells))
	for _, cd := range doc.Cells {
		at := maze.Coord{Col: cd.Col, Row: cd.Row}
		c := g.CellAt(at)
		if c == nil || seen[at] {
			return nil, Meta{}, fmt.Errorf("cell %s: %w", at, ErrInvalidCell)
		}
		seen[at] = true
		for _, l := range cd.Links {
			other := g.CellAt(l)
			if other == nil || !adjacent(at, l) {
				return nil, Meta{}, fmt.Errorf("link %s->%s: %w", at, l, ErrInvalidLink)
			}
			c.Link(other, true)
		}
	}
	for _, cd := range doc.Cells {
		c := g.Cell(cd.Col, cd.Row)
		if got := uint8(c.Walls()); got != cd.Walls {
			return nil, Meta{}, fmt.Errorf("cell %s: stored %d, links give %d: %w",
				c, cd.Walls, got, ErrWallsMismatch)
		}
	}

	meta := Meta{Seed: doc.Seed}
	if doc.Algorithm != "" {
		algo, err := maze.ParseAlgorithm(doc.Algorithm)
		if err != nil {
			return nil, Meta{}, err
		}
		meta.Algorithm = algo
	}
	return g, meta, nil
}

func adjacent(a, b maze.Coord) bool {
	dc, dr := a.Col-b.Col, a.Row-b.Row
	return dc*dc+dr*dr == 1
}

// Unmarshal decodes a JSON maze document.
func Unmarshal(data []byte) (*maze.Grid, Meta, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ReadJSON decodes a JSON maze from r. Links are applied symmetrically, so a
// link listed on only one endpoint still opens the passage both ways; the
// stored wall codes must then agree. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*maze.Grid, Meta, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, Meta{}, fmt.Errorf("decode: %w", err)
	}
	return Decode(doc)
}

// ImportJSON reads a JSON file at path and returns the decoded maze.
func ImportJSON(path string) (*maze.Grid, Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
