package solver

import (
	"fmt"

	"github.com/arclib/arcgraph/core"
	"github.com/arclib/arcgraph/shortest"
)

// NoArc marks matrix entries with no direct connection.
const NoArc = shortest.Inf

// ArborescenceMatrix builds the dense weight matrix an ArborescenceSolver
// consumes: one slot per vertex with the root moved to the last slot, and
// weights[i][j] the cheapest direct traversal cost from slot i's vertex to
// slot j's vertex (NoArc when no link allows it, including the diagonal).
// Complexity: O(V² + M).
func ArborescenceMatrix(g *core.Graph, root int) ([][]int64, error) {
	n := g.VertexCount()
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %d", core.ErrVertexNotFound, root)
	}

	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		for j := range w[i] {
			w[i][j] = NoArc
		}
	}

	consider := func(from, to int, cost int64) {
		if from == to {
			return
		}
		i, j := slotOf(from, root, n), slotOf(to, root, n)
		if cost < w[i][j] {
			w[i][j] = cost
		}
	}
	for _, l := range g.Links() {
		if l.Directed() {
			consider(l.Tail(), l.Head(), l.Cost())
			continue
		}
		consider(l.Tail(), l.Head(), l.Cost())
		back := l.Cost()
		if rc, ok := l.ReverseCost(); ok {
			back = rc
		}
		consider(l.Head(), l.Tail(), back)
	}

	return w, nil
}

// TranslateArborescence converts an ArborescenceSolver answer back into
// links of g: pred assigns every non-root slot its predecessor slot, and
// the result lists, per non-root slot, the id of the cheapest link
// realizing that predecessor arc. Complexity: O(V · parallel links).
func TranslateArborescence(g *core.Graph, root int, pred []int) ([]int, error) {
	n := g.VertexCount()
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %d", core.ErrVertexNotFound, root)
	}
	if len(pred) != n-1 {
		return nil, fmt.Errorf("%w: got %d slots for %d vertices", ErrBadPredecessors, len(pred), n)
	}

	out := make([]int, n-1)
	for slot, p := range pred {
		if p < 0 || p >= n || p == slot {
			return nil, fmt.Errorf("%w: slot %d points at %d", ErrBadPredecessors, slot, p)
		}
		from := vertexOf(p, root, n)
		to := vertexOf(slot, root, n)
		id, err := cheapestTraversable(g, from, to)
		if err != nil {
			return nil, err
		}
		out[slot] = id
	}

	return out, nil
}

// slotOf maps a vertex id to its matrix slot: the root goes last, everyone
// else keeps insertion order.
func slotOf(v, root, n int) int {
	switch {
	case v == root:
		return n - 1
	case v < root:
		return v - 1
	default:
		return v - 2
	}
}

// vertexOf is the inverse of slotOf.
func vertexOf(slot, root, n int) int {
	switch {
	case slot == n-1:
		return root
	case slot < root-1:
		return slot + 1
	default:
		return slot + 2
	}
}

// cheapestTraversable returns the id of the cheapest link traversable from
// one vertex to another, honoring orientation and windy reverse costs.
func cheapestTraversable(g *core.Graph, from, to int) (int, error) {
	best := 0
	bestCost := NoArc
	for _, l := range g.FindLinks(from, to) {
		if l.Directed() && l.Tail() != from {
			continue
		}
		cost := l.Cost()
		if rc, ok := l.ReverseCost(); ok && l.Head() == from {
			cost = rc
		}
		if cost < bestCost {
			best = l.ID()
			bestCost = cost
		}
	}
	if best == 0 {
		return 0, fmt.Errorf("%w: no link from %d to %d", core.ErrLinkNotFound, from, to)
	}

	return best, nil
}
