package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// tilesCommand creates the tiles command listing the wall-code table.
func (c *CLI) tilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tiles",
		Short: "List the 16 wall-code tiles",
		Long: `List the tile chosen for every wall code. A cell's code has bit N=1, E=2,
S=4 and W=8 set for each closed side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTiles(cmd.OutOrStdout())
			return nil
		},
	}
}

func printTiles(w io.Writer) {
	tiles := maze.Tiles()
	rows := make([][]string, len(tiles))
	for i, t := range tiles {
		rows[i] = []string{
			fmt.Sprintf("%2d", uint8(t)),
			fmt.Sprintf("%04b", uint8(t)),
			t.String(),
			t.Kind().String(),
			t.Walls().String(),
		}
	}
	renderTable(w, []string{"Code", "WSEN", "Tile", "Kind", "Walls"}, rows)
}
