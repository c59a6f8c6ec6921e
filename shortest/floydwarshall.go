package shortest

import (
	"go.uber.org/zap"

	"github.com/arclib/arcgraph/core"
)

// FloydWarshall fills caller-allocated all-pairs matrices for g.
//
// All matrices are indexed 1..V in both dimensions and must be allocated
// (V+1)×(V+1); row and column 0 are unused. On return dist[i][j] is the
// cheapest cost from i to j (Inf when unreachable, always 0 on the
// diagonal), next[i][j] is the first hop on that
// path, and linkPath[i][j] the id of the first link. next and linkPath may
// each be nil when the caller only needs distances.
//
// A cycle of negative total cost aborts the computation with
// ErrNegativeCycle; matrix contents are then unspecified.
// Complexity: O(V³).
func FloydWarshall(g *core.Graph, dist [][]int64, next [][]int, linkPath [][]int, opts ...Option) error {
	n := g.VertexCount()
	if err := checkDist(dist, n); err != nil {
		return err
	}
	if err := checkHops(next, n); err != nil {
		return err
	}
	if err := checkHops(linkPath, n); err != nil {
		return err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Base case: direct cheapest arcs of the directed view.
	p := project(g)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			dist[i][j] = Inf
			if next != nil {
				next[i][j] = 0
			}
			if linkPath != nil {
				linkPath[i][j] = 0
			}
		}
	}
	for i := 1; i <= n; i++ {
		for _, a := range p.out[i] {
			dist[i][a.to] = a.cost
			if next != nil {
				next[i][a.to] = a.to
			}
			if linkPath != nil {
				linkPath[i][a.to] = a.link
			}
		}
		if dist[i][i] < 0 {
			return ErrNegativeCycle
		}
	}

	// 2. Relax through every intermediate vertex.
	for k := 1; k <= n; k++ {
		for i := 1; i <= n; i++ {
			dik := dist[i][k]
			if dik == Inf {
				continue
			}
			for j := 1; j <= n; j++ {
				if dist[k][j] == Inf {
					continue
				}
				nd := dik + dist[k][j]
				if nd >= dist[i][j] {
					continue
				}
				dist[i][j] = nd
				if next != nil {
					next[i][j] = next[i][k]
				}
				if linkPath != nil {
					linkPath[i][j] = linkPath[i][k]
				}
				if i == j && nd < 0 {
					return ErrNegativeCycle
				}
			}
		}
	}

	// 3. A vertex is trivially reachable from itself at zero cost. Cheaper
	// round trips would have tripped the negative-cycle check above, so the
	// clamp only ever lowers a positive or Inf diagonal.
	for i := 1; i <= n; i++ {
		dist[i][i] = 0
	}

	o.Logger.Debug("floyd-warshall done", zap.Int("vertices", n), zap.Int("arcs", p.m))

	return nil
}

func checkDist(m [][]int64, n int) error {
	if len(m) != n+1 {
		return ErrDimension
	}
	for _, row := range m {
		if len(row) != n+1 {
			return ErrDimension
		}
	}

	return nil
}

func checkHops(m [][]int, n int) error {
	if m == nil {
		return nil
	}
	if len(m) != n+1 {
		return ErrDimension
	}
	for _, row := range m {
		if len(row) != n+1 {
			return ErrDimension
		}
	}

	return nil
}
