package maze_test

import (
	"fmt"

	"github.com/matzehuels/mazegen/pkg/maze"
)

func ExampleGenerate() {
	g, _ := maze.NewGrid(6, 4, nil)
	if err := maze.Generate(g, maze.AlgorithmWilson, maze.NewRand(42)); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Cells:", g.Size())
	fmt.Println("Links:", g.LinkCount())
	fmt.Println("Perfect:", g.IsPerfect())
	// Output:
	// Cells: 24
	// Links: 23
	// Perfect: true
}

func ExampleParseMask() {
	mask, _ := maze.ParseMaskString("..\nxx")
	g := maze.NewGridFromMask(mask)
	_ = maze.Generate(g, maze.AlgorithmSidewinder, maze.NewRand(1))

	fmt.Println("Present:", mask.Count())
	fmt.Println("Row 1 masked:", g.Cell(0, 1) == nil)
	fmt.Println("Walls:", g.Cell(0, 0).Walls(), g.Cell(1, 0).Walls())
	// Output:
	// Present: 2
	// Row 1 masked: true
	// Walls: NSW NES
}

func ExampleTileFor() {
	g, _ := maze.NewGrid(1, 1, nil)
	fmt.Println(maze.TileFor(g.Cell(0, 0).Walls()))
	fmt.Println(maze.TileFor(maze.WallNorth | maze.WallSouth).Kind())
	// Output:
	// AllWalls
	// hall
}
