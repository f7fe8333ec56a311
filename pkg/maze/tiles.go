package maze

// Tile names the piece a renderer places for a wall code. The value of a Tile
// equals the [Walls] code it represents, so the table is stable.
type Tile uint8

const (
	TileNoWalls      Tile = 0
	TileOneWallN     Tile = 1
	TileOneWallE     Tile = 2
	TileCornerNE     Tile = 3
	TileOneWallS     Tile = 4
	TileHallNS       Tile = 5
	TileCornerES     Tile = 6
	TileThreeWallNES Tile = 7
	TileOneWallW     Tile = 8
	TileCornerWN     Tile = 9
	TileHallEW       Tile = 10
	TileThreeWallWNE Tile = 11
	TileCornerSW     Tile = 12
	TileThreeWallSWN Tile = 13
	TileThreeWallESW Tile = 14
	TileAllWalls     Tile = 15
)

// TileKind groups tiles by wall shape.
type TileKind uint8

const (
	KindOpen      TileKind = iota // no walls
	KindOneWall                   // a single wall
	KindCorner                    // two adjacent walls
	KindHall                      // two opposite walls
	KindThreeWall                 // dead end
	KindClosed                    // all four walls
)

var tileNames = [16]string{
	"NoWalls", "OneWallN", "OneWallE", "CornerNE",
	"OneWallS", "HallNS", "CornerES", "ThreeWallNES",
	"OneWallW", "CornerWN", "HallEW", "ThreeWallWNE",
	"CornerSW", "ThreeWallSWN", "ThreeWallESW", "AllWalls",
}

var kindNames = [...]string{"open", "one-wall", "corner", "hall", "three-wall", "closed"}

// TileFor returns the tile for a wall code.
func TileFor(w Walls) Tile { return Tile(w & WallsAll) }

// Tiles returns all 16 tiles in code order.
func Tiles() []Tile {
	out := make([]Tile, 16)
	for i := range out {
		out[i] = Tile(i)
	}
	return out
}

// Walls returns the wall code of t.
func (t Tile) Walls() Walls { return Walls(t) & WallsAll }

// Kind classifies t by wall shape.
func (t Tile) Kind() TileKind {
	w := t.Walls()
	switch w.Count() {
	case 0:
		return KindOpen
	case 1:
		return KindOneWall
	case 3:
		return KindThreeWall
	case 4:
		return KindClosed
	}
	if w == WallNorth|WallSouth || w == WallEast|WallWest {
		return KindHall
	}
	return KindCorner
}

func (t Tile) String() string { return tileNames[t&15] }

func (k TileKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
