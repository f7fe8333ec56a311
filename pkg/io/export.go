package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Meta carries the generation inputs stored alongside a maze.
type Meta struct {
	Algorithm maze.Algorithm
	Seed      uint64
}

// Document is the serialized form of a maze.
type Document struct {
	Columns   int       `json:"columns" bson:"columns"`
	Rows      int       `json:"rows" bson:"rows"`
	Algorithm string    `json:"algorithm,omitempty" bson:"algorithm,omitempty"`
	Seed      uint64    `json:"seed" bson:"seed"`
	Mask      []string  `json:"mask,omitempty" bson:"mask,omitempty"`
	Cells     []CellDoc `json:"cells" bson:"cells"`
}

// CellDoc is one present cell of a [Document].
type CellDoc struct {
	Col   int          `json:"col" bson:"col"`
	Row   int          `json:"row" bson:"row"`
	Walls uint8        `json:"walls" bson:"walls"`
	Links []maze.Coord `json:"links,omitempty" bson:"links,omitempty"`
}

// Encode converts a grid into a [Document].
func Encode(g *maze.Grid, meta Meta) Document {
	doc := Document{
		Columns:   g.Columns(),
		Rows:      g.Rows(),
		Algorithm: string(meta.Algorithm),
		Seed:      meta.Seed,
		Cells:     make([]CellDoc, 0, g.Size()),
	}
	if m := g.Mask(); m != nil {
		doc.Mask = strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	}
	for _, c := range g.Cells() {
		cd := CellDoc{Col: c.Col(), Row: c.Row(), Walls: uint8(c.Walls())}
		for _, l := range c.Links() {
			cd.Links = append(cd.Links, l.Coord())
		}
		doc.Cells = append(doc.Cells, cd)
	}
	return doc
}

// Marshal encodes a maze as indented JSON.
func Marshal(g *maze.Grid, meta Meta) ([]byte, error) {
	data, err := json.MarshalIndent(Encode(g, meta), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// WriteJSON encodes a maze as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *maze.Grid, meta Meta, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Encode(g, meta)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a maze to a JSON file at path.
func ExportJSON(g *maze.Grid, meta Meta, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, meta, f)
}
