package solver

import (
	"errors"

	"github.com/arclib/arcgraph/core"
)

// Sentinel errors for solver adapters.
var (
	// ErrOddCount indicates a matching was requested over an odd number of
	// vertices.
	ErrOddCount = errors.New("solver: matching needs an even vertex count")

	// ErrUnreachablePair indicates two vertices that must be priced
	// against each other have no connecting path.
	ErrUnreachablePair = errors.New("solver: no path between vertex pair")

	// ErrBadPredecessors indicates an arborescence answer whose shape does
	// not fit the queried graph.
	ErrBadPredecessors = errors.New("solver: malformed predecessor array")
)

// Pair is an unordered vertex pairing produced by a Matcher.
type Pair struct {
	A, B int
}

// Matcher computes a minimum-weight perfect matching on a complete
// undirected graph (typically built by BuildMatchingGraph). Returned pairs
// reference the graph's vertex ids.
type Matcher interface {
	Match(g *core.Graph) ([]Pair, error)
}

// Partitioner splits a graph's vertices into the requested number of
// roughly balanced parts, returning a vertex id → part index map.
type Partitioner interface {
	Partition(g *core.Graph, parts int) (map[int]int, error)
}

// ArborescenceSolver computes a minimum spanning arborescence over a dense
// weight matrix in root-last slot layout (see ArborescenceMatrix). The
// answer assigns each non-root slot its predecessor slot.
type ArborescenceSolver interface {
	Solve(weights [][]int64) ([]int, error)
}
