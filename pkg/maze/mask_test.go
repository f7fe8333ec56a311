package maze

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMask(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cols    int
		rows    int
		count   int
		absent  []Coord
		wantErr error
	}{
		{name: "all present", text: "...\n...", cols: 3, rows: 2, count: 6},
		{name: "first line is row 0", text: "..\nxx", cols: 2, rows: 2, count: 2, absent: []Coord{{0, 1}, {1, 1}}},
		{name: "upper case X", text: "X.\n.X", cols: 2, rows: 2, count: 2, absent: []Coord{{0, 0}, {1, 1}}},
		{name: "ignores other characters", text: " . x .\t\n.-.-.", cols: 3, rows: 2, count: 5, absent: []Coord{{1, 0}}},
		{name: "skips blank lines", text: "\n..\n\n..\n\n", cols: 2, rows: 2, count: 4},
		{name: "crlf line endings", text: "..\r\n.x\r\n", cols: 2, rows: 2, count: 3, absent: []Coord{{1, 1}}},
		{name: "ragged", text: "...\n..", wantErr: ErrMalformedMask},
		{name: "ragged last line", text: "..\n..\n...", wantErr: ErrMalformedMask},
		{name: "empty", text: "", wantErr: ErrMalformedMask},
		{name: "no mask characters", text: "abc\n---", wantErr: ErrMalformedMask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMaskString(tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cols, m.Columns())
			assert.Equal(t, tt.rows, m.Rows())
			assert.Equal(t, tt.count, m.Count())
			for _, a := range tt.absent {
				assert.False(t, m.Present(a.Col, a.Row), "%v should be absent", a)
			}
		})
	}
}

func TestParseMaskLongLine(t *testing.T) {
	line := strings.Repeat(" ", 200<<10) + ".x."
	m, err := ParseMaskString(line + "\n" + "...")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 5, m.Count())
}

func TestMaskStringRoundTrip(t *testing.T) {
	const text = "..x.\nx...\n....\n"
	m, err := ParseMaskString(text)
	require.NoError(t, err)
	assert.Equal(t, text, m.String())

	again, err := ParseMaskString(m.String())
	require.NoError(t, err)
	assert.Equal(t, m, again)
}

func TestNewMaskInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {math.MaxInt / 2, 3}, {math.MaxInt, 2}} {
		_, err := NewMask(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestMaskPresentOutOfBounds(t *testing.T) {
	m, err := NewMask(2, 2)
	require.NoError(t, err)
	assert.True(t, m.Present(1, 1))
	assert.False(t, m.Present(-1, 0))
	assert.False(t, m.Present(0, 2))
	assert.False(t, m.Present(2, 0))
}

func TestNewMaskFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	for y := 20; y < 22; y++ {
		for x := 10; x < 13; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(11, 20, color.Black)
	img.Set(12, 21, color.RGBA{A: 0xff})
	img.Set(10, 21, color.RGBA{}) // transparent stays present

	m, err := NewMaskFromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Columns())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 4, m.Count())
	assert.False(t, m.Present(1, 0))
	assert.False(t, m.Present(2, 1))
	assert.True(t, m.Present(0, 1))
}

func TestNewMaskFromEmptyImage(t *testing.T) {
	_, err := NewMaskFromImage(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestSampleRandomPresentLocation(t *testing.T) {
	m, err := ParseMaskString("x.x\nxxx\n.xx")
	require.NoError(t, err)

	rng := NewRand(7)
	seen := map[Coord]int{}
	for range 400 {
		at, err := m.SampleRandomPresentLocation(rng)
		require.NoError(t, err)
		require.True(t, m.Present(at.Col, at.Row))
		seen[at]++
	}
	assert.Len(t, seen, 2)
	assert.Greater(t, seen[Coord{1, 0}], 100)
	assert.Greater(t, seen[Coord{0, 2}], 100)
}

func TestSampleRandomPresentLocationEmpty(t *testing.T) {
	m, err := ParseMaskString("xx\nxx")
	require.NoError(t, err)
	assert.Zero(t, m.Count())

	_, err = m.SampleRandomPresentLocation(NewRand(1))
	assert.ErrorIs(t, err, ErrEmptyMask)
}
