package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileTable(t *testing.T) {
	kinds := map[TileKind]int{}
	names := map[string]bool{}
	for code := range 16 {
		tile := TileFor(Walls(code))
		assert.Equal(t, Walls(code), tile.Walls())
		kinds[tile.Kind()]++
		names[tile.String()] = true
	}
	assert.Len(t, names, 16, "every code has a distinct tile")
	assert.Equal(t, map[TileKind]int{
		KindOpen:      1,
		KindOneWall:   4,
		KindCorner:    4,
		KindHall:      2,
		KindThreeWall: 4,
		KindClosed:    1,
	}, kinds)
}

func TestTileNames(t *testing.T) {
	tests := []struct {
		walls Walls
		tile  Tile
		name  string
		kind  TileKind
	}{
		{WallsNone, TileNoWalls, "NoWalls", KindOpen},
		{WallsAll, TileAllWalls, "AllWalls", KindClosed},
		{WallNorth, TileOneWallN, "OneWallN", KindOneWall},
		{WallWest, TileOneWallW, "OneWallW", KindOneWall},
		{WallNorth | WallEast, TileCornerNE, "CornerNE", KindCorner},
		{WallSouth | WallWest, TileCornerSW, "CornerSW", KindCorner},
		{WallNorth | WallSouth, TileHallNS, "HallNS", KindHall},
		{WallEast | WallWest, TileHallEW, "HallEW", KindHall},
		{WallNorth | WallEast | WallSouth, TileThreeWallNES, "ThreeWallNES", KindThreeWall},
		{WallSouth | WallWest | WallNorth, TileThreeWallSWN, "ThreeWallSWN", KindThreeWall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := TileFor(tt.walls)
			assert.Equal(t, tt.tile, tile)
			assert.Equal(t, tt.name, tile.String())
			assert.Equal(t, tt.kind, tile.Kind())
		})
	}
	assert.Len(t, Tiles(), 16)
	assert.Equal(t, "three-wall", KindThreeWall.String())
}
