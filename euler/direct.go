package euler

import (
	"fmt"
	"sort"

	"github.com/arclib/arcgraph/core"
)

// DirectUndirectedCycles converts a mixed graph into a fully directed one
// by orienting every undirected link. It requires IsStronglyEulerian: even
// undirected degrees guarantee the undirected links decompose into closed
// trails, and each trail is oriented along its walk, preserving the zero
// delta at every vertex. Windy links take the cost of their chosen
// direction.
//
// The result is a new graph on the same vertex ids, sharing g's IDSource.
// Every arc's match id is the id of the source link it came from; vertex
// match ids are the source vertex ids. The orientation keeps delta balance
// but not necessarily strong connectivity, so callers must re-check
// connectivity before touring. Complexity: O(V + M log M).
func DirectUndirectedCycles(g *core.Graph) (*core.Graph, error) {
	ok, err := IsStronglyEulerian(g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: odd degree or unbalanced vertex", ErrNotEulerian)
	}

	out, err := core.New(g.IDs(), core.WithDirected(true))
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		nv := out.AddVertex()
		nv.SetMatchID(v.ID())
	}
	if g.Depot() != 0 {
		if err := out.SetDepot(g.Depot()); err != nil {
			return nil, err
		}
	}

	// 1. Arcs carry over as-is.
	undirected := make(map[int][]*core.Link) // per-vertex incident undirected links
	for _, l := range g.Links() {
		if l.Directed() {
			if _, err := out.AddLink(l.Tail(), l.Head(), l.Cost(), core.WithMatchID(l.ID())); err != nil {
				return nil, err
			}
			continue
		}
		undirected[l.Tail()] = append(undirected[l.Tail()], l)
		if l.Head() != l.Tail() {
			undirected[l.Head()] = append(undirected[l.Head()], l)
		}
	}
	for v := range undirected {
		sort.Slice(undirected[v], func(i, j int) bool {
			return undirected[v][i].ID() < undirected[v][j].ID()
		})
	}

	// 2. Walk closed trails through the undirected links, orienting each
	// link the way the walk traverses it. Even degrees make every walk
	// return to its start, one component at a time.
	used := make(map[int]bool)
	for _, v := range g.Vertices() {
		for {
			start := v.ID()
			l := firstUnused(undirected[start], used)
			if l == nil {
				break
			}
			cur := start
			for {
				l = firstUnused(undirected[cur], used)
				if l == nil {
					break
				}
				used[l.ID()] = true
				next := l.Other(cur)
				cost := l.Cost()
				if rc, ok := l.ReverseCost(); ok && l.Head() == cur {
					cost = rc // traversing the windy link head→tail
				}
				if _, err := out.AddLink(cur, next, cost, core.WithMatchID(l.ID())); err != nil {
					return nil, err
				}
				cur = next
			}
		}
	}

	return out, nil
}

func firstUnused(links []*core.Link, used map[int]bool) *core.Link {
	for _, l := range links {
		if !used[l.ID()] {
			return l
		}
	}

	return nil
}
