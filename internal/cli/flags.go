package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/render"
)

// defaultOutputBase names output files when --output is not given.
const defaultOutputBase = "maze"

// parseRoot parses a "col,row" flag value.
func parseRoot(s string) (*maze.Coord, error) {
	if s == "" {
		return nil, nil
	}
	colStr, rowStr, ok := strings.Cut(s, ",")
	col, errC := strconv.Atoi(strings.TrimSpace(colStr))
	row, errR := strconv.Atoi(strings.TrimSpace(rowStr))
	if !ok || errC != nil || errR != nil {
		return nil, fmt.Errorf("invalid root %q (want col,row)", s)
	}
	return &maze.Coord{Col: col, Row: row}, nil
}

// readMask loads a mask diagram from path, or from stdin when path is "-".
func readMask(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", nil
	}
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read mask: %w", err)
	}
	return string(data), nil
}

// basePath strips a known format extension from output so that every
// requested format can be written next to it. An empty output yields
// defaultOutputBase.
func basePath(output string) string {
	if output == "" {
		return defaultOutputBase
	}
	// longest extensions first so "x.tree.svg" loses ".tree.svg", not ".svg"
	exts := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		exts = append(exts, "."+f.Extension())
	}
	slices.SortFunc(exts, func(a, b string) int { return len(b) - len(a) })
	for _, ext := range exts {
		if strings.HasSuffix(output, ext) && len(output) > len(ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// outputPath is the file written for format next to base.
func outputPath(base string, f render.Format) string {
	return base + "." + f.Extension()
}
