package maze

import "math/rand/v2"

// Wilson grows a uniform spanning tree from loop-erased random walks. One
// random cell seeds the tree. Each walk starts at a random cell outside the
// tree and wanders until it hits the tree; whenever it crosses its own path
// the loop is erased. The surviving path is then linked into the tree.
func Wilson(g *Grid, rng *rand.Rand) error {
	if err := checkReady(g, rng); err != nil {
		return err
	}

	// unvisited is a swap-remove set; pos maps arena index to slot or -1.
	unvisited := g.Cells()
	pos := make([]int, len(g.cells))
	for i := range pos {
		pos[i] = -1
	}
	for i, c := range unvisited {
		pos[c.index] = i
	}
	remove := func(c *Cell) {
		i := pos[c.index]
		last := len(unvisited) - 1
		unvisited[i] = unvisited[last]
		pos[unvisited[i].index] = i
		unvisited = unvisited[:last]
		pos[c.index] = -1
	}

	remove(pick(rng, unvisited))

	// onPath maps arena index to position in the current walk or -1.
	onPath := make([]int, len(g.cells))
	for i := range onPath {
		onPath[i] = -1
	}
	var path []*Cell

	for len(unvisited) > 0 {
		cell := pick(rng, unvisited)
		path = append(path[:0], cell)
		onPath[cell.index] = 0

		for pos[cell.index] >= 0 {
			cell = pick(rng, cell.NeighboursList())
			if at := onPath[cell.index]; at >= 0 {
				for _, erased := range path[at+1:] {
					onPath[erased.index] = -1
				}
				path = path[:at+1]
				continue
			}
			onPath[cell.index] = len(path)
			path = append(path, cell)
		}

		for i := 0; i < len(path)-1; i++ {
			path[i].Link(path[i+1], true)
			remove(path[i])
		}
		for _, c := range path {
			onPath[c.index] = -1
		}
	}
	return nil
}
