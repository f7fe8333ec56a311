package render

import (
	"fmt"
	"slices"
	"strings"
)

// Format names an output format.
type Format string

const (
	FormatASCII Format = "ascii"
	FormatSVG   Format = "svg"
	FormatPNG   Format = "png"
	FormatPDF   Format = "pdf"
	FormatDOT   Format = "dot"  // link tree as Graphviz source
	FormatTree  Format = "tree" // link tree rendered by Graphviz as SVG
	FormatJSON  Format = "json" // maze document, see pkg/io
)

var formats = []Format{FormatASCII, FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatTree, FormatJSON}

// Formats returns every supported format.
func Formats() []Format { return slices.Clone(formats) }

// ParseFormat resolves a format name. "txt" and "text" are accepted for ASCII.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "txt", "text":
		return FormatASCII, nil
	case "graphviz", "gv":
		return FormatDOT, nil
	}
	f := Format(name)
	if !slices.Contains(formats, f) {
		return "", fmt.Errorf("unknown format %q", s)
	}
	return f, nil
}

// ParseFormats splits a comma separated list and drops duplicates.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// NeedsConverter reports whether the format shells out to rsvg-convert.
func (f Format) NeedsConverter() bool { return f == FormatPDF }

// Extension returns the file extension, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatASCII:
		return "txt"
	case FormatTree:
		return "tree.svg"
	}
	return string(f)
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG, FormatTree:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

func (f Format) String() string { return string(f) }
