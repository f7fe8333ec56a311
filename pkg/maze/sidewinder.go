package maze

import (
	"fmt"
	"math/rand/v2"
)

// Sidewinder works row by row from south to north, growing a run of cells
// eastward. Each step either extends the run east or closes it out by linking
// one random member north. A run always closes at the end of its row segment.
//
// On masked grids a run only closes early when the current cell has a north
// neighbour and the rest of the segment still holds one, and the northward
// link is drawn from run members that have a north neighbour. That keeps
// every early run attached. Exactly one segment may lack a north neighbour
// altogether; other masks return [ErrUnsupportedMask]. On unmasked grids the
// behaviour is the classic algorithm.
func Sidewinder(g *Grid, rng *rand.Rand) error {
	if err := checkReady(g, rng); err != nil {
		return err
	}
	// northAhead[i] reports whether a cell strictly east of i, within the same
	// segment, has a north neighbour.
	northAhead := make([]bool, len(g.cells))
	roots := 0
	for row := range g.rows {
		ahead := false
		for col := g.columns - 1; col >= 0; col-- {
			c := g.Cell(col, row)
			if c == nil {
				ahead = false
				continue
			}
			if c.Neighbour(East) == nil {
				ahead = false
			}
			northAhead[c.index] = ahead
			hasNorth := c.Neighbour(North) != nil
			if c.Neighbour(West) == nil && !ahead && !hasNorth {
				roots++
			}
			ahead = ahead || hasNorth
		}
	}
	if roots != 1 {
		return fmt.Errorf("%w: sidewinder needs one segment without a north exit, mask has %d",
			ErrUnsupportedMask, roots)
	}

	run := make([]*Cell, 0, g.columns)
	for row := range g.rows {
		run = run[:0]
		for col := range g.columns {
			c := g.Cell(col, row)
			if c == nil {
				continue
			}
			run = append(run, c)

			east := c.Neighbour(East)
			north := c.Neighbour(North)
			closeOut := east == nil ||
				(north != nil && northAhead[c.index] && rng.IntN(2) == 0)

			if !closeOut {
				c.Link(east, true)
				continue
			}
			if exits := withNorth(run); len(exits) > 0 {
				member := pick(rng, exits)
				member.Link(member.Neighbour(North), true)
			}
			run = run[:0]
		}
	}
	return nil
}

func withNorth(run []*Cell) []*Cell {
	out := run[:0:0]
	for _, c := range run {
		if c.Neighbour(North) != nil {
			out = append(out, c)
		}
	}
	return out
}
