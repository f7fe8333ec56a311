package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

var (
	viewCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	viewHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// viewCommand creates the read-only terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var gen generateOpts

	cmd := &cobra.Command{
		Use:   "view [maze.json]",
		Short: "Browse a maze in the terminal",
		Long: `Open a maze in a read-only terminal viewer. Without a file a new maze is
generated from the same flags as "generate".

Keys: arrows/hjkl move, d distances, p longest path, r re-root at cursor, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g    *maze.Grid
				meta mazeio.Meta
				err  error
			)
			if len(args) == 1 {
				g, meta, err = loadMaze(args[0], cmd.InOrStdin())
			} else {
				var popts pipeline.Options
				if popts, err = c.generateOptions(cmd, &gen); err == nil {
					g, meta, err = pipeline.Generate(popts)
				}
			}
			if err != nil {
				return err
			}

			m, err := newViewModel(g, meta)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&gen.columns, "columns", "c", 0, "grid width (default from config)")
	f.IntVarP(&gen.rows, "rows", "r", 0, "grid height (default from config)")
	f.StringVarP(&gen.maskFile, "mask", "m", "", "mask diagram file")
	f.StringVarP(&gen.algorithm, "algorithm", "a", "", "algorithm: "+algorithmList())
	f.Uint64VarP(&gen.seed, "seed", "s", 0, "random seed")

	return cmd
}

// =============================================================================
// viewModel - read-only maze browser
// =============================================================================

type viewModel struct {
	grid      *maze.Grid
	meta      mazeio.Meta
	analysis  *pipeline.Analysis
	cursor    maze.Coord
	distances bool
	path      bool
}

func newViewModel(g *maze.Grid, meta mazeio.Meta) (viewModel, error) {
	a, err := pipeline.Analyze(g, nil)
	if err != nil {
		return viewModel{}, err
	}
	return viewModel{grid: g, meta: meta, analysis: a, cursor: a.Root}, nil
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "d":
		m.distances = !m.distances
	case "p":
		m.path = !m.path
	case "r":
		root := m.cursor
		if a, err := pipeline.Analyze(m.grid, &root); err == nil {
			m.analysis = a
		}
	}
	return m, nil
}

// move steps the cursor in screen space, skipping absent positions. Row 0 is
// the top line, so "up" decreases the row.
func (m *viewModel) move(dc, dr int) {
	col, row := m.cursor.Col+dc, m.cursor.Row+dr
	for col >= 0 && col < m.grid.Columns() && row >= 0 && row < m.grid.Rows() {
		if m.grid.Cell(col, row) != nil {
			m.cursor = maze.Coord{Col: col, Row: row}
			return
		}
		col, row = col+dc, row+dr
	}
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%dx%d maze", m.grid.Columns(), m.grid.Rows())))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · seed %d", m.meta.Algorithm, m.meta.Seed)))
	b.WriteString("\n\n")
	b.WriteString(m.drawGrid())
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(viewHelpStyle.Render("arrows/hjkl move  d distances  p path  r re-root  q quit"))
	return b.String()
}

// drawGrid renders the ASCII maze and highlights the cursor cell. Each row
// occupies the body line 2*row+1 and each label sits at byte 4*col+2.
func (m viewModel) drawGrid() string {
	var opts []render.Option
	if m.distances {
		opts = append(opts, render.WithDistances(m.analysis.Distances))
	}
	if m.path {
		opts = append(opts, render.WithPath(m.analysis.Path))
	}
	lines := strings.Split(render.ASCII(m.grid, opts...), "\n")

	li, at := 2*m.cursor.Row+1, 4*m.cursor.Col+2
	if li < len(lines) {
		line := lines[li]
		if len(line) <= at {
			line += strings.Repeat(" ", at-len(line)+1)
		}
		mark := line[at : at+1]
		if mark == " " {
			mark = "@"
		}
		lines[li] = line[:at] + viewCursorStyle.Render(mark) + line[at+1:]
	}
	return strings.Join(lines, "\n")
}

func (m viewModel) status() string {
	c := m.grid.CellAt(m.cursor)
	if c == nil {
		return ""
	}
	dist := "unreachable"
	if d, ok := m.analysis.Distances.Get(c); ok {
		dist = fmt.Sprintf("%d from %s", d, m.analysis.Root)
	}
	tile := maze.TileFor(c.Walls())
	return fmt.Sprintf("%s  %s  %s  %s",
		StyleHighlight.Render(m.cursor.String()),
		StyleValue.Render(dist),
		StyleDim.Render(tile.String()),
		StyleDim.Render(fmt.Sprintf("%d dead ends", m.analysis.DeadEnds)))
}
