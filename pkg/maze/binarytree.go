package maze

import (
	"fmt"
	"math/rand/v2"
)

// BinaryTree links every cell to its north or east neighbour, choosing by a
// coin flip when both exist. The result is biased toward the north-east
// corner, which ends up with open corridors along the top row and east column.
//
// Every link points toward larger row+col, so the result is always a forest;
// it is a single tree only when exactly one cell has neither a north nor an
// east neighbour. Masks violating that return [ErrUnsupportedMask].
func BinaryTree(g *Grid, rng *rand.Rand) error {
	if err := checkReady(g, rng); err != nil {
		return err
	}
	sinks := 0
	for _, c := range g.cells {
		if c != nil && c.Neighbour(North) == nil && c.Neighbour(East) == nil {
			sinks++
		}
	}
	if sinks != 1 {
		return fmt.Errorf("%w: binary tree needs one north-east sink, mask has %d",
			ErrUnsupportedMask, sinks)
	}

	for _, c := range g.cells {
		if c == nil {
			continue
		}
		north, east := c.Neighbour(North), c.Neighbour(East)
		switch {
		case north != nil && east != nil:
			if rng.IntN(2) == 0 {
				c.Link(north, true)
			} else {
				c.Link(east, true)
			}
		case north != nil:
			c.Link(north, true)
		case east != nil:
			c.Link(east, true)
		}
	}
	return nil
}
