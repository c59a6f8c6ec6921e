package solver

import (
	"fmt"

	"github.com/arclib/arcgraph/core"
	"github.com/arclib/arcgraph/shortest"
)

// BuildMatchingGraph assembles the complete undirected graph a Matcher
// pairs odd-degree vertices on. odd lists the vertex ids to pair (an even
// count of them) and dist is an all-pairs distance matrix for g, as filled
// by shortest.FloydWarshall. Every pair gets one edge priced at the cheaper
// of the two directions, and every new vertex carries its source vertex id
// as match id so pairings translate straight back to g.
//
// Errors: ErrOddCount for an odd vertex count, ErrUnreachablePair when two
// listed vertices have no connecting path, shortest.ErrDimension for a
// misshapen matrix, core.ErrVertexNotFound for unknown ids.
func BuildMatchingGraph(g *core.Graph, odd []int, dist [][]int64) (*core.Graph, error) {
	if len(odd)%2 != 0 {
		return nil, fmt.Errorf("%w: %d vertices", ErrOddCount, len(odd))
	}
	n := g.VertexCount()
	if len(dist) != n+1 {
		return nil, shortest.ErrDimension
	}
	for _, row := range dist {
		if len(row) != n+1 {
			return nil, shortest.ErrDimension
		}
	}
	for _, id := range odd {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: id %d", core.ErrVertexNotFound, id)
		}
	}

	mg, err := core.New(g.IDs())
	if err != nil {
		return nil, err
	}
	for _, id := range odd {
		mg.AddVertex().SetMatchID(id)
	}
	for i := 0; i < len(odd); i++ {
		for j := i + 1; j < len(odd); j++ {
			a, b := odd[i], odd[j]
			cost := dist[a][b]
			if dist[b][a] < cost {
				cost = dist[b][a]
			}
			if cost >= shortest.Inf {
				return nil, fmt.Errorf("%w: %d and %d", ErrUnreachablePair, a, b)
			}
			if _, err := mg.AddLink(i+1, j+1, cost); err != nil {
				return nil, err
			}
		}
	}

	return mg, nil
}
