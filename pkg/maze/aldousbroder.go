package maze

import "math/rand/v2"

// AldousBroder performs an unbiased random walk, linking each cell the walk
// enters for the first time to the cell it came from. It produces a uniform
// spanning tree, but the walk revisits cells many times before the last one
// is found.
func AldousBroder(g *Grid, rng *rand.Rand) error {
	if err := checkReady(g, rng); err != nil {
		return err
	}
	cell, err := g.RandomCell(rng)
	if err != nil {
		return err
	}
	for unvisited := g.size - 1; unvisited > 0; {
		next := pick(rng, cell.NeighboursList())
		if next.Degree() == 0 {
			cell.Link(next, true)
			unvisited--
		}
		cell = next
	}
	return nil
}
