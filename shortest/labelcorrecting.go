package shortest

import (
	"container/list"
	"fmt"

	"go.uber.org/zap"

	"github.com/arclib/arcgraph/core"
)

// discipline selects how a label-correcting scan orders its active queue.
type discipline int

const (
	fifo discipline = iota // plain FIFO: Bellman-Ford
	papeRule               // front if seen before, back if fresh: Pape
	slfRule                // front if label ≤ queue head's label: SLF
)

// BellmanFord computes cheapest paths from source with a FIFO
// label-correcting scan. Negative costs are allowed; a reachable negative
// cycle is reported as a *NegativeCycleError. Worst case O(V·E).
func BellmanFord(g *core.Graph, source int, opts ...Option) (*Result, error) {
	return labelCorrect(g, source, fifo, opts)
}

// Pape computes cheapest paths from source using Pape's queue discipline:
// a vertex that has been scanned before re-enters at the front, a fresh one
// at the back. Often fast on sparse road networks; worst case exponential,
// bounded here by the same scan limit as the other variants.
func Pape(g *core.Graph, source int, opts ...Option) (*Result, error) {
	return labelCorrect(g, source, papeRule, opts)
}

// SLF computes cheapest paths from source using the smallest-label-first
// discipline: a vertex whose label does not exceed the queue head's enters
// at the front, otherwise at the back. Worst case O(V·E).
func SLF(g *core.Graph, source int, opts ...Option) (*Result, error) {
	return labelCorrect(g, source, slfRule, opts)
}

func labelCorrect(g *core.Graph, source int, d discipline, opts []Option) (*Result, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", core.ErrVertexNotFound, source)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Directed view and the BIG sentinel.
	p := project(g)
	big := p.big()

	res := &Result{
		Dist:      make([]int64, p.n+1),
		Prev:      make([]int, p.n+1),
		Links:     make([]int, p.n+1),
		Unreached: big,
	}
	for v := 1; v <= p.n; v++ {
		res.Dist[v] = big
	}
	res.Dist[source] = 0

	// 2. Deque scan. A finite run performs at most n·m profitable scans;
	// exceeding that bound proves a reachable negative cycle.
	queue := list.New()
	queue.PushBack(source)
	inQueue := make([]bool, p.n+1)
	everScanned := make([]bool, p.n+1)
	inQueue[source] = true

	limit := p.n*p.m + p.n + 1
	scans := 0
	lastImproved := source

	for queue.Len() > 0 {
		scans++
		if scans > limit {
			return nil, recoverCycle(p.n, lastImproved, res)
		}

		front := queue.Front()
		u := front.Value.(int)
		queue.Remove(front)
		inQueue[u] = false
		everScanned[u] = true

		du := res.Dist[u]
		for _, a := range p.out[u] {
			nd := du + a.cost
			if nd >= res.Dist[a.to] {
				continue
			}
			res.Dist[a.to] = nd
			res.Prev[a.to] = u
			res.Links[a.to] = a.link
			lastImproved = a.to
			if inQueue[a.to] {
				continue
			}
			inQueue[a.to] = true
			switch d {
			case papeRule:
				if everScanned[a.to] {
					queue.PushFront(a.to)
				} else {
					queue.PushBack(a.to)
				}
			case slfRule:
				if queue.Len() > 0 && res.Dist[a.to] <= res.Dist[queue.Front().Value.(int)] {
					queue.PushFront(a.to)
				} else {
					queue.PushBack(a.to)
				}
			default:
				queue.PushBack(a.to)
			}
		}
	}

	o.Logger.Debug("label-correcting done",
		zap.Int("source", source), zap.Int("scans", scans), zap.Int("vertices", p.n))

	return res, nil
}

// recoverCycle extracts a concrete negative cycle from the predecessor
// structure once the scan limit proves one exists. Following predecessors n
// times from the last improved vertex is guaranteed to land on the cycle;
// one more lap collects it.
func recoverCycle(n, from int, res *Result) *NegativeCycleError {
	cur := from
	for i := 0; i < n; i++ {
		cur = res.Prev[cur]
	}

	verts := []int{cur}
	var links []int
	for x := cur; ; {
		links = append(links, res.Links[x])
		x = res.Prev[x]
		verts = append(verts, x)
		if x == cur {
			break
		}
	}
	reverse(verts)
	reverse(links)

	return &NegativeCycleError{Start: cur, Vertices: verts, Links: links}
}
