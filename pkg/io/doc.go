// Package io provides JSON import and export for generated mazes.
//
// # JSON Format
//
// A maze document records the lattice size, the generation inputs, the mask
// (when one was used) and every present cell with its wall code and links:
//
//	{
//	  "columns": 2,
//	  "rows": 2,
//	  "algorithm": "sidewinder",
//	  "seed": 1,
//	  "mask": ["..", "xx"],
//	  "cells": [
//	    {"col": 0, "row": 0, "walls": 13, "links": [{"col": 1, "row": 0}]},
//	    {"col": 1, "row": 0, "walls": 7, "links": [{"col": 0, "row": 0}]}
//	  ]
//	}
//
// Mask lines use the text format of [maze.ParseMask]: line i is row i.
// Links are listed on both endpoints. Wall codes are derived data and are
// checked against the links on import.
//
// # Import
//
// Use [ImportJSON] to read a maze from a file path, or [ReadJSON] to read
// from any io.Reader. Both rebuild the grid and its links and reject
// documents whose links join non-adjacent or missing cells.
//
// # Export
//
// Use [ExportJSON] to write a maze to a file, or [WriteJSON] to write to any
// io.Writer. [Encode] and [Decode] convert between grids and [Document]
// values for callers that embed the document in a larger payload.
//
// [maze.ParseMask]: github.com/matzehuels/mazegen/pkg/maze.ParseMask
package io
