package shortest

import (
	"fmt"

	"github.com/arclib/arcgraph/core"
)

// AddShortestPath duplicates every link on the cheapest path from one
// vertex to another into g, walking matrices previously filled by
// FloydWarshall on the same graph. Each duplicate copies the source link's
// orientation, costs, capacity, and required flag, and carries the source
// link's match id (or its id when no match id was set) so augmented links
// stay traceable. A from==to call adds nothing.
func AddShortestPath(g *core.Graph, dist [][]int64, next [][]int, linkPath [][]int, from, to int) error {
	ids, err := pathLinks(g, dist, next, linkPath, from, to)
	if err != nil {
		return err
	}
	for _, id := range ids {
		src, err := g.Link(id)
		if err != nil {
			return err
		}
		lopts := []core.LinkOption{core.WithLinkDirected(src.Directed())}
		if rc, ok := src.ReverseCost(); ok {
			lopts = append(lopts, core.WithReverseCost(rc))
		}
		if c, ok := src.Capacity(); ok {
			lopts = append(lopts, core.WithCapacity(c))
		}
		if src.Required() {
			lopts = append(lopts, core.WithRequired())
		}
		mid := src.MatchID()
		if mid == 0 {
			mid = src.ID()
		}
		lopts = append(lopts, core.WithMatchID(mid))
		if _, err := g.AddLink(src.Tail(), src.Head(), src.Cost(), lopts...); err != nil {
			return err
		}
	}

	return nil
}

// RemoveShortestPath removes from g the exact links of the cheapest path
// from one vertex to another, walking matrices previously filled by
// FloydWarshall on the same graph. The matrices become stale for the
// removed links; recompute before reusing them.
func RemoveShortestPath(g *core.Graph, dist [][]int64, next [][]int, linkPath [][]int, from, to int) error {
	ids, err := pathLinks(g, dist, next, linkPath, from, to)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := g.RemoveLink(id); err != nil {
			return err
		}
	}

	return nil
}

// pathLinks walks the next-hop matrices collecting the link ids of the
// cheapest from→to path in traversal order.
func pathLinks(g *core.Graph, dist [][]int64, next [][]int, linkPath [][]int, from, to int) ([]int, error) {
	n := g.VertexCount()
	if err := checkDist(dist, n); err != nil {
		return nil, err
	}
	if next == nil || linkPath == nil {
		return nil, ErrDimension
	}
	if err := checkHops(next, n); err != nil {
		return nil, err
	}
	if err := checkHops(linkPath, n); err != nil {
		return nil, err
	}
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: from %d", core.ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: to %d", core.ErrVertexNotFound, to)
	}
	if from == to {
		return nil, nil
	}
	if dist[from][to] >= Inf {
		return nil, fmt.Errorf("%w: %d to %d", ErrNoPath, from, to)
	}

	var ids []int
	for cur, steps := from, 0; cur != to; steps++ {
		if steps > n {
			return nil, fmt.Errorf("%w: %d to %d (stale matrices)", ErrNoPath, from, to)
		}
		ids = append(ids, linkPath[cur][to])
		cur = next[cur][to]
	}

	return ids, nil
}
