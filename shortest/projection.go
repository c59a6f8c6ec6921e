package shortest

import (
	"sort"

	"github.com/arclib/arcgraph/core"
)

// projArc is one arc of the directed view of a graph: cost of traversal
// and the id of the originating link in the source graph.
type projArc struct {
	to   int
	cost int64
	link int
}

// projection is the directed view all algorithms in this package run on.
// out[v] lists v's outgoing arcs sorted by target vertex, with parallel
// arcs already collapsed to the cheapest.
type projection struct {
	n    int
	m    int // arc count after collapsing
	out  [][]projArc
	absC int64 // sum of |cost| over all arcs, basis for the BIG sentinel
}

// project builds the directed view of g: arcs stay arcs, edges become two
// equal-cost opposite arcs, windy links become two opposite arcs with the
// forward and reverse costs. The cheapest parallel arc wins per ordered
// vertex pair. Complexity: O(V + M log M).
func project(g *core.Graph) *projection {
	n := g.VertexCount()
	best := make([]map[int]projArc, n+1)
	for v := 1; v <= n; v++ {
		best[v] = make(map[int]projArc)
	}

	consider := func(from, to int, cost int64, link int) {
		cur, ok := best[from][to]
		if !ok || cost < cur.cost {
			best[from][to] = projArc{to: to, cost: cost, link: link}
		}
	}

	for _, l := range g.Links() {
		if l.Directed() {
			consider(l.Tail(), l.Head(), l.Cost(), l.ID())
			continue
		}
		consider(l.Tail(), l.Head(), l.Cost(), l.ID())
		back := l.Cost()
		if rc, ok := l.ReverseCost(); ok {
			back = rc
		}
		consider(l.Head(), l.Tail(), back, l.ID())
	}

	p := &projection{n: n, out: make([][]projArc, n+1)}
	for v := 1; v <= n; v++ {
		arcs := make([]projArc, 0, len(best[v]))
		for _, a := range best[v] {
			arcs = append(arcs, a)
		}
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].to < arcs[j].to })
		p.out[v] = arcs
		p.m += len(arcs)
		for _, a := range arcs {
			if a.cost < 0 {
				p.absC -= a.cost
			} else {
				p.absC += a.cost
			}
		}
	}

	return p
}

// big returns the unreachable-distance sentinel for label-correcting scans:
// strictly larger than any simple path cost in the projection.
func (p *projection) big() int64 { return p.absC + 1 }
