package nodelink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mazegen/pkg/maze"
)

func corridor(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(3, 1, nil)
	require.NoError(t, err)
	g.Cell(0, 0).Link(g.Cell(1, 0), true)
	g.Cell(1, 0).Link(g.Cell(2, 0), true)
	return g
}

func TestToDOTEdgesPointAwayFromRoot(t *testing.T) {
	g := corridor(t)
	dot := ToDOT(g, Options{Root: g.Cell(2, 0)})

	assert.Contains(t, dot, `"c2_0" -> "c1_0";`)
	assert.Contains(t, dot, `"c1_0" -> "c0_0";`)
	assert.Equal(t, 2, strings.Count(dot, "->"))
}

func TestToDOTDefaultRootIsMiddle(t *testing.T) {
	g := corridor(t)
	dot := ToDOT(g, Options{})
	assert.Contains(t, dot, `"c1_0" -> "c0_0";`)
	assert.Contains(t, dot, `"c1_0" -> "c2_0";`)
}

func TestToDOTDetailedAndPath(t *testing.T) {
	g := corridor(t)
	dot := ToDOT(g, Options{
		Root:     g.Cell(0, 0),
		Path:     []*maze.Cell{g.Cell(0, 0), g.Cell(1, 0)},
		Detailed: true,
		Heatmap:  true,
	})
	assert.Contains(t, dot, `label="2,0\n2"`)
	assert.Equal(t, 2, strings.Count(dot, "penwidth=3"))
	assert.Equal(t, 3, strings.Count(dot, "fillcolor=\"#"))
}

func TestToDOTUnreachable(t *testing.T) {
	g, err := maze.NewGrid(2, 1, nil)
	require.NoError(t, err)
	dot := ToDOT(g, Options{Root: g.Cell(0, 0), Detailed: true})
	assert.Contains(t, dot, "dashed")
	assert.NotContains(t, dot, "->")
}

func TestToDOTEmptyGrid(t *testing.T) {
	m, err := maze.ParseMaskString("xx")
	require.NoError(t, err)
	dot := ToDOT(maze.NewGridFromMask(m), Options{})
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.NotContains(t, dot, "label=")
}

func TestRenderSVG(t *testing.T) {
	g := corridor(t)
	svg, err := RenderSVG(ToDOT(g, Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	assert.Contains(t, out, `viewBox="0 0 62.00 116.00" width="62" height="116"`)

	plain := []byte("<svg><g/></svg>")
	assert.Equal(t, plain, normalizeViewBox(plain))
}
