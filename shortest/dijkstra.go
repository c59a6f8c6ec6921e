package shortest

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/arclib/arcgraph/core"
)

// nodePQ is a binary min-heap of (vertex, distance) entries with lazy
// decrease-key: improving a vertex pushes a fresh entry and stale ones are
// skipped on pop.
type nodePQ []pqItem

type pqItem struct {
	v    int
	dist int64
}

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// Dijkstra computes cheapest paths from source to every vertex of g.
//
// Link costs must be non-negative (reverse costs of windy links included);
// with negative costs the answer is undefined. Unreachable vertices get
// Dist = Inf. Complexity: O((V + E) log V).
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", core.ErrVertexNotFound, source)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Directed view.
	p := project(g)

	// 2. Label setting.
	res := &Result{
		Dist:      make([]int64, p.n+1),
		Prev:      make([]int, p.n+1),
		Links:     make([]int, p.n+1),
		Unreached: Inf,
	}
	for v := 1; v <= p.n; v++ {
		res.Dist[v] = Inf
	}
	res.Dist[source] = 0

	done := make([]bool, p.n+1)
	pq := &nodePQ{{v: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		it := heap.Pop(pq).(pqItem)
		if done[it.v] || it.dist > res.Dist[it.v] {
			continue // stale entry
		}
		done[it.v] = true
		for _, a := range p.out[it.v] {
			if done[a.to] {
				continue
			}
			nd := it.dist + a.cost
			if nd < res.Dist[a.to] {
				res.Dist[a.to] = nd
				res.Prev[a.to] = it.v
				res.Links[a.to] = a.link
				heap.Push(pq, pqItem{v: a.to, dist: nd})
			}
		}
	}

	o.Logger.Debug("dijkstra done",
		zap.Int("source", source), zap.Int("vertices", p.n), zap.Int("arcs", p.m))

	return res, nil
}
