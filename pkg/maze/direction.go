package maze

import (
	"fmt"
	"math/bits"
	"strings"
)

// Coord identifies a lattice position. Cells compare equal by Coord.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Direction is one of the four compass directions.
type Direction uint8

const (
	North Direction = iota // row+1
	East                   // col+1
	South                  // row-1
	West                   // col-1
)

// Directions lists every direction in neighbour order.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the column and row offset of a step in direction d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Wall returns the wall bit for the side facing d.
func (d Direction) Wall() Walls { return 1 << d }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Walls is a 4-bit code of closed cell sides.
type Walls uint8

const (
	WallNorth Walls = 1 << iota
	WallEast
	WallSouth
	WallWest

	WallsNone Walls = 0
	WallsAll        = WallNorth | WallEast | WallSouth | WallWest
)

// Has reports whether the side facing d is closed.
func (w Walls) Has(d Direction) bool { return w&d.Wall() != 0 }

// Count returns the number of closed sides.
func (w Walls) Count() int { return bits.OnesCount8(uint8(w & WallsAll)) }

// String lists closed sides by initial in N, E, S, W order, or "-" when open.
func (w Walls) String() string {
	if w&WallsAll == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, d := range Directions {
		if w.Has(d) {
			sb.WriteByte("NESW"[d])
		}
	}
	return sb.String()
}
