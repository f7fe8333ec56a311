package maze

import (
	"math/rand/v2"
)

// RecursiveBacktracker is a randomized depth-first search from a random
// start cell, driven by an explicit stack of cells.
func RecursiveBacktracker(g *Grid, rng *rand.Rand) error {
	if err := checkReady(g, rng); err != nil {
		return err
	}
	start, err := g.RandomCell(rng)
	if err != nil {
		return err
	}
	backtrack(g, start, rng)
	return nil
}

// RecursiveBacktrackerFrom runs [RecursiveBacktracker] from a chosen start cell.
func RecursiveBacktrackerFrom(start *Cell, rng *rand.Rand) error {
	if start == nil {
		return ErrForeignCell
	}
	if err := checkReady(start.grid, rng); err != nil {
		return err
	}
	backtrack(start.grid, start, rng)
	return nil
}

func backtrack(g *Grid, start *Cell, rng *rand.Rand) {
	visited := make([]bool, len(g.cells))
	visited[start.index] = true
	stack := []*Cell{start}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		fresh := filterVisited(top.NeighboursList(), visited, false)
		if len(fresh) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := pick(rng, fresh)
		top.Link(next, true)
		visited[next.index] = true
		stack = append(stack, next)
	}
}
