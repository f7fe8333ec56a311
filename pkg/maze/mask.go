package maze

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math/rand/v2"
	"strings"
)

// maxMaskLine bounds one diagram line, ignored characters included.
const maxMaskLine = 2 << 20

// Mask is a boolean raster marking which lattice positions take part in a
// maze. Masks are immutable once built.
type Mask struct {
	columns int
	rows    int
	present []bool // index row*columns+col
	count   int
}

// NewMask returns a mask of the given size with every position present.
func NewMask(columns, rows int) (*Mask, error) {
	return NewMaskFunc(columns, rows, func(int, int) bool { return true })
}

// NewMaskFunc builds a mask by asking present for every position.
func NewMaskFunc(columns, rows int, present func(col, row int) bool) (*Mask, error) {
	if err := checkDimensions(columns, rows); err != nil {
		return nil, err
	}
	m := &Mask{columns: columns, rows: rows, present: make([]bool, columns*rows)}
	for row := range rows {
		for col := range columns {
			if present(col, row) {
				m.present[row*columns+col] = true
				m.count++
			}
		}
	}
	return m, nil
}

// NewMaskFromImage builds a mask with one position per pixel. Opaque black
// pixels are absent; every other colour is present. Column and row are the
// pixel offsets from the image's top-left corner, so the first pixel line is
// row 0, matching the text format.
func NewMaskFromImage(img image.Image) (*Mask, error) {
	b := img.Bounds()
	return NewMaskFunc(b.Dx(), b.Dy(), func(col, row int) bool {
		r, g, bl, a := img.At(b.Min.X+col, b.Min.Y+row).RGBA()
		return !(r == 0 && g == 0 && bl == 0 && a == 0xffff)
	})
}

// ParseMaskString is [ParseMask] over a string.
func ParseMaskString(s string) (*Mask, error) {
	return ParseMask(strings.NewReader(s))
}

// ParseMask reads a text diagram: '.' marks a present position, 'x' or 'X'
// an absent one, and every other character is ignored. Line i is row i.
// Lines without any mask character are skipped. All rows must have the same
// number of columns.
func ParseMask(r io.Reader) (*Mask, error) {
	var lines [][]bool
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxMaskLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		var row []bool
		for _, ch := range sc.Text() {
			switch ch {
			case '.':
				row = append(row, true)
			case 'x', 'X':
				row = append(row, false)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(lines) > 0 && len(row) != len(lines[0]) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrMalformedMask, lineNo, len(row), len(lines[0]))
		}
		lines = append(lines, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read mask: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedMask)
	}
	return NewMaskFunc(len(lines[0]), len(lines), func(col, row int) bool {
		return lines[row][col]
	})
}

// Columns returns the mask width.
func (m *Mask) Columns() int { return m.columns }

// Rows returns the mask height.
func (m *Mask) Rows() int { return m.rows }

// Count returns the number of present positions.
func (m *Mask) Count() int { return m.count }

// Present reports whether (col, row) is in bounds and present.
func (m *Mask) Present(col, row int) bool {
	if col < 0 || row < 0 || col >= m.columns || row >= m.rows {
		return false
	}
	return m.present[row*m.columns+col]
}

// SampleRandomPresentLocation returns a uniformly random present position.
// It rejection-samples the full rectangle, so the expected number of draws
// is area/Count; sparse masks are slow but always terminate. A mask with no
// present positions returns [ErrEmptyMask].
func (m *Mask) SampleRandomPresentLocation(rng *rand.Rand) (Coord, error) {
	if m.count == 0 {
		return Coord{}, ErrEmptyMask
	}
	for {
		col, row := rng.IntN(m.columns), rng.IntN(m.rows)
		if m.present[row*m.columns+col] {
			return Coord{Col: col, Row: row}, nil
		}
	}
}

// String renders the mask in the text format accepted by [ParseMask].
func (m *Mask) String() string {
	var sb strings.Builder
	sb.Grow((m.columns + 1) * m.rows)
	for row := range m.rows {
		for col := range m.columns {
			if m.present[row*m.columns+col] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('x')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
