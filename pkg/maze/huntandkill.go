package maze

import "math/rand/v2"

// HuntAndKill random-walks through unvisited cells until it is boxed in, then
// hunts row by row for the first unvisited cell bordering the visited region,
// links it to a random visited neighbour and walks on from there.
func HuntAndKill(g *Grid, rng *rand.Rand) error {
	if err := checkReady(g, rng); err != nil {
		return err
	}
	visited := make([]bool, len(g.cells))
	current, err := g.RandomCell(rng)
	if err != nil {
		return err
	}
	visited[current.index] = true

	for current != nil {
		if fresh := filterVisited(current.NeighboursList(), visited, false); len(fresh) > 0 {
			next := pick(rng, fresh)
			current.Link(next, true)
			visited[next.index] = true
			current = next
			continue
		}
		current = hunt(g, visited, rng)
	}
	return nil
}

func hunt(g *Grid, visited []bool, rng *rand.Rand) *Cell {
	for _, c := range g.cells {
		if c == nil || visited[c.index] {
			continue
		}
		if seen := filterVisited(c.NeighboursList(), visited, true); len(seen) > 0 {
			c.Link(pick(rng, seen), true)
			visited[c.index] = true
			return c
		}
	}
	return nil
}

func filterVisited(cells []*Cell, visited []bool, want bool) []*Cell {
	out := cells[:0]
	for _, c := range cells {
		if visited[c.index] == want {
			out = append(out, c)
		}
	}
	return out
}
