package maze

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Algorithm names a maze generator.
type Algorithm string

const (
	AlgorithmBinaryTree           Algorithm = "binary-tree"
	AlgorithmSidewinder           Algorithm = "sidewinder"
	AlgorithmAldousBroder         Algorithm = "aldous-broder"
	AlgorithmWilson               Algorithm = "wilson"
	AlgorithmHuntAndKill          Algorithm = "hunt-and-kill"
	AlgorithmRecursiveBacktracker Algorithm = "recursive-backtracker"
)

// GeneratorFunc carves a spanning tree into an unlinked grid.
type GeneratorFunc func(g *Grid, rng *rand.Rand) error

var generators = map[Algorithm]GeneratorFunc{
	AlgorithmBinaryTree:           BinaryTree,
	AlgorithmSidewinder:           Sidewinder,
	AlgorithmAldousBroder:         AldousBroder,
	AlgorithmWilson:               Wilson,
	AlgorithmHuntAndKill:          HuntAndKill,
	AlgorithmRecursiveBacktracker: RecursiveBacktracker,
}

var algorithmAliases = map[string]Algorithm{
	"backtracker": AlgorithmRecursiveBacktracker,
	"dfs":         AlgorithmRecursiveBacktracker,
	"huntkill":    AlgorithmHuntAndKill,
}

// Algorithms returns every algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmBinaryTree,
		AlgorithmSidewinder,
		AlgorithmAldousBroder,
		AlgorithmWilson,
		AlgorithmHuntAndKill,
		AlgorithmRecursiveBacktracker,
	}
}

// ParseAlgorithm resolves a name case-insensitively, ignoring '-', '_' and
// spaces, so "BinaryTree", "binary_tree" and "binary-tree" all match.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := normalizeName(name)
	for _, a := range Algorithms() {
		if normalizeName(string(a)) == key {
			return a, nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

func (a Algorithm) String() string { return string(a) }

// Uniform reports whether the algorithm samples spanning trees uniformly.
func (a Algorithm) Uniform() bool {
	return a == AlgorithmAldousBroder || a == AlgorithmWilson
}

// Generate runs the named algorithm on g.
func Generate(g *Grid, algo Algorithm, rng *rand.Rand) error {
	fn, ok := generators[algo]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	return fn(g, rng)
}

// NewRand returns a PCG-backed source for seed. Equal seeds yield equal mazes.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// checkReady enforces the preconditions shared by every generator.
func checkReady(g *Grid, rng *rand.Rand) error {
	if rng == nil {
		return ErrNilRandom
	}
	if g.size == 0 {
		return ErrEmptyMask
	}
	if g.hasLinks() {
		return ErrAlreadyLinked
	}
	if !g.IsConnected() {
		return ErrDisconnectedMask
	}
	return nil
}

func pick(rng *rand.Rand, cells []*Cell) *Cell {
	return cells[rng.IntN(len(cells))]
}
