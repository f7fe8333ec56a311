package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	mazeio "github.com/matzehuels/mazegen/pkg/io"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

type analyzeOpts struct {
	root   string
	asJSON bool
	show   bool
}

// analyzeCommand creates the analyze command for saved maze documents.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <maze.json>",
		Short: "Report distances, dead ends and the longest path of a maze",
		Long: `Analyze a maze written by "mazegen generate -f json" (use - for stdin).

Distances are measured from --root, or from the middle cell by default.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, meta, err := loadMaze(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			root, err := parseRoot(opts.root)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.OutOrStdout(), g, meta, root, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "distance root as col,row (default: middle cell)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the analysis as JSON")
	cmd.Flags().BoolVar(&opts.show, "show", false, "draw the maze with distance labels")

	return cmd
}

// loadMaze reads a maze document from path, or from stdin when path is "-".
func loadMaze(path string, stdin io.Reader) (*maze.Grid, mazeio.Meta, error) {
	if path == "-" {
		return mazeio.ReadJSON(stdin)
	}
	return mazeio.ImportJSON(path)
}

func runAnalyze(w io.Writer, g *maze.Grid, meta mazeio.Meta, root *maze.Coord, opts *analyzeOpts) error {
	a, err := pipeline.Analyze(g, root)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	if opts.show {
		fmt.Fprint(w, render.ASCII(g, render.WithDistances(a.Distances)))
		printNewline()
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%dx%d maze", g.Columns(), g.Rows())) +
		StyleDim.Render(fmt.Sprintf("  %s · seed %d", meta.Algorithm, meta.Seed)))
	printDetail("%d cells · %d links", g.Size(), g.LinkCount())
	printAnalysis(a)

	kinds := make([]string, 0, len(a.TileKinds))
	for k := range a.TileKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		printDetail("%-10s %d", k, a.TileKinds[k])
	}
	return nil
}
