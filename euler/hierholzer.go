package euler

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/arclib/arcgraph/core"
)

// Tour returns a closed Euler tour of g as the ids of g's links in
// traversal order. The tour starts and ends at the configured start vertex
// (depot, falling back to vertex 1). Mixed graphs are first reduced with
// DirectUndirectedCycles. An empty graph yields an empty tour.
//
// Errors: ErrNotEulerian when the degree structure rules a tour out,
// ErrNotConnected / ErrNotStronglyConnected when the links do not hang
// together, core.ErrVertexNotFound for a bad start vertex.
func Tour(g *core.Graph, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.LinkCount() == 0 {
		return []int{}, nil
	}

	start := o.Start
	if start == 0 {
		start = g.Depot()
	}
	if start == 0 {
		start = 1
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %d", core.ErrVertexNotFound, start)
	}

	ok, err := IsEulerian(g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: degree condition failed", ErrNotEulerian)
	}

	// Mixed graphs tour their directed reduction; link ids then map back
	// through two match-id hops (tour copy → reduction → original).
	work := g
	if g.HasDirectedLinks() && g.HasUndirectedLinks() {
		work, err = DirectUndirectedCycles(g)
		if err != nil {
			return nil, err
		}
	}

	if err := linksConnected(work, work.HasDirectedLinks(), start); err != nil {
		return nil, err
	}

	cp := work.DeepCopy()
	trail, err := splice(cp, start)
	if err != nil {
		return nil, err
	}

	// Translate copy-local ids back to g's ids.
	out := make([]int, len(trail))
	for i, id := range trail {
		cl, err := cp.Link(id)
		if err != nil {
			return nil, err
		}
		orig := cl.MatchID()
		if work != g {
			wl, err := work.Link(orig)
			if err != nil {
				return nil, err
			}
			orig = wl.MatchID()
		}
		out[i] = orig
	}

	o.Logger.Debug("euler tour done",
		zap.Int("start", start), zap.Int("links", len(out)))

	return out, nil
}

// splice runs Hierholzer's trail-splicing on cp, which it consumes.
// It returns cp link ids in traversal order.
func splice(cp *core.Graph, start int) ([]int, error) {
	w := newWalker(cp)

	verts := []int{start}
	var links []int

	for len(links) < cp.LinkCount() {
		// splice point: first trail vertex with unused links
		at := -1
		for i, v := range verts {
			if w.peek(v) != nil {
				at = i
				break
			}
		}
		if at == -1 {
			return nil, fmt.Errorf("%w: %d links unreachable from the trail",
				ErrNotConnected, cp.LinkCount()-len(links))
		}

		// closed sub-trail from the splice point
		anchor := verts[at]
		var subV, subL []int
		cur := anchor
		for {
			l := w.peek(cur)
			if l == nil {
				break
			}
			w.consume(l)
			next := l.Head()
			if !l.Directed() {
				next = l.Other(cur)
			}
			subL = append(subL, l.ID())
			subV = append(subV, next)
			cur = next
		}
		if cur != anchor {
			return nil, fmt.Errorf("%w: open trail at vertex %d", ErrNotEulerian, cur)
		}

		verts = append(verts[:at+1], append(subV, verts[at+1:]...)...)
		links = append(links[:at], append(subL, links[at:]...)...)
	}

	return links, nil
}

// walker tracks unused links per vertex, always yielding the lowest unused
// id traversable from that vertex.
type walker struct {
	cand map[int][]*core.Link
	ptr  map[int]int
	used map[int]bool
}

func newWalker(g *core.Graph) *walker {
	w := &walker{
		cand: make(map[int][]*core.Link),
		ptr:  make(map[int]int),
		used: make(map[int]bool),
	}
	for _, l := range g.Links() {
		w.cand[l.Tail()] = append(w.cand[l.Tail()], l)
		if !l.Directed() && l.Head() != l.Tail() {
			w.cand[l.Head()] = append(w.cand[l.Head()], l)
		}
	}
	for v := range w.cand {
		sort.Slice(w.cand[v], func(i, j int) bool { return w.cand[v][i].ID() < w.cand[v][j].ID() })
	}

	return w
}

// peek returns the lowest-id unused link traversable from v, nil when none.
func (w *walker) peek(v int) *core.Link {
	for w.ptr[v] < len(w.cand[v]) && w.used[w.cand[v][w.ptr[v]].ID()] {
		w.ptr[v]++
	}
	if w.ptr[v] == len(w.cand[v]) {
		return nil
	}

	return w.cand[v][w.ptr[v]]
}

func (w *walker) consume(l *core.Link) { w.used[l.ID()] = true }
