package maze

import (
	"fmt"
)

const (
	// DefaultLoopThreshold is the run length after which a dead end gets an extra passage.
	DefaultLoopThreshold = 8
)

// Rand is the random source a generator draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Algorithm names a generation strategy.
type Algorithm string

const (
	AlgorithmDepthFirst Algorithm = "dfs"
	AlgorithmFrontier   Algorithm = "frontier"
	AlgorithmWilson     Algorithm = "wilson"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{AlgorithmDepthFirst, AlgorithmFrontier, AlgorithmWilson}

// StartPolicy picks the first cell when the caller does not supply one.
type StartPolicy int

const (
	// StartTopRow picks a random column on the top row.
	StartTopRow StartPolicy = iota
	// StartAnywhere picks a random cell.
	StartAnywhere
)

// Options configures a generator.
type Options struct {
	LoopThreshold int         // DepthFirst only; values <= 0 fall back to DefaultLoopThreshold
	StartPolicy   StartPolicy // Used when Generate gets a nil start
}

// Stats summarises one generation run.
type Stats struct {
	Algorithm     Algorithm    `json:"algorithm"`
	Start         CellPosition `json:"start"`
	Steps         int          `json:"steps"`
	Visited       int          `json:"visited"`
	Cells         int          `json:"cells"`
	LoopsInjected int          `json:"loops_injected"`
	OpenWalls     int          `json:"open_walls"`
}

// Generator carves passages into a freshly built grid.
// The grid must not be shared with anything else until Generate returns.
type Generator interface {
	Generate(g *Grid, rng Rand, start *CellPosition) (Stats, error)
}

// NewGenerator returns the generator registered under alg.
func NewGenerator(alg Algorithm, opts Options) (Generator, error) {
	switch alg {
	case AlgorithmDepthFirst:
		return NewDepthFirst(opts), nil
	case AlgorithmFrontier:
		return NewFrontier(opts), nil
	case AlgorithmWilson:
		return NewWilson(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, alg := range Algorithms {
		if string(alg) == name {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// startIndex resolves the first cell from the caller's choice or the policy.
func startIndex(g *Grid, rng Rand, start *CellPosition, policy StartPolicy) (int, error) {
	if start != nil {
		index := g.Lookup(start.Row, start.Col)
		if index == NoNeighbor {
			return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, start.Row, start.Col)
		}
		return index, nil
	}

	if policy == StartAnywhere {
		return rng.Intn(g.Len()), nil
	}
	return g.Lookup(0, rng.Intn(g.Cols())), nil
}

// shuffled returns the standing walls of the cell at index in random order.
func shuffled(g *Grid, rng Rand, index int) []Connection {
	conns := g.Connections(index)
	rng.Shuffle(len(conns), func(i, j int) {
		conns[i], conns[j] = conns[j], conns[i]
	})
	return conns
}
