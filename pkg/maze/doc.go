// Package maze generates perfect mazes over a rectangular cell lattice and
// computes graph analytics on the result.
//
// # Overview
//
// A maze is a spanning tree over the present cells of a [Grid]. Each [Cell]
// knows its four compass neighbours (computed from the grid and its optional
// [Mask], never stored) and owns a set of links: the open passages carved by
// a generator.
//
// North is the direction of increasing row and East the direction of
// increasing column:
//
//	row+1        North
//	  ^            |
//	  |     West --+-- East
//	  +--> col+1   |
//	             South
//
// # Basic Usage
//
// Build a grid, pick an [Algorithm] and supply a seeded random source:
//
//	g, _ := maze.NewGrid(10, 10, nil)
//	rng := maze.NewRand(42)
//	if err := maze.Generate(g, maze.AlgorithmWilson, rng); err != nil {
//	    return err
//	}
//	path, _ := maze.LongestPath(g)
//
// The same seed always produces the same maze.
//
// # Masks
//
// A [Mask] removes lattice positions from the grid. Masks are built from
// explicit dimensions ([NewMask], [NewMaskFunc]), from an image where opaque
// black pixels are absent ([NewMaskFromImage]), or from a text diagram
// ([ParseMask]):
//
//	..x
//	...
//	x..
//
// Line i of the diagram is row i. Generators require the present cells to
// form a single connected component and fail with [ErrDisconnectedMask]
// otherwise.
//
// # Algorithms
//
// Six generators share the grid contract:
//
//   - [BinaryTree]: links each cell north or east; strong diagonal bias
//   - [Sidewinder]: row runs closed out northward; vertical corridors
//   - [AldousBroder]: random walk; uniform spanning tree, slow
//   - [Wilson]: loop-erased random walk; uniform spanning tree
//   - [HuntAndKill]: random walk with row-major hunting for restarts
//   - [RecursiveBacktracker]: randomized depth-first search with a stack
//
// # Walls
//
// [Cell.Walls] returns a 4-bit code with North=1, East=2, South=4 and West=8.
// A side is open only when a neighbour exists there and is linked. [TileFor]
// maps each of the 16 codes to a stable [Tile].
//
// # Concurrency
//
// A Grid is mutated by exactly one generator call at a time and is not safe
// for concurrent use. Independent grids with independent random sources may
// be generated in parallel.
package maze
