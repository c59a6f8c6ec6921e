package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclib/arcgraph/core"
	"github.com/arclib/arcgraph/shortest"
	"github.com/arclib/arcgraph/solver"
)

func TestArborescenceMatrix_SlotLayout(t *testing.T) {
	g, _ := core.New(core.NewIDSource(), core.WithDirected(true))
	g.AddVertices(3)
	g.AddLink(2, 1, 4) // root is 2: slots are 1→0, 3→1, 2→2
	g.AddLink(2, 3, 6)
	g.AddLink(1, 3, 1)
	g.AddLink(1, 3, 9) // parallel, more expensive

	w, err := solver.ArborescenceMatrix(g, 2)
	require.NoError(t, err)
	require.Len(t, w, 3)

	assert.Equal(t, int64(4), w[2][0], "root slot → vertex 1")
	assert.Equal(t, int64(6), w[2][1], "root slot → vertex 3")
	assert.Equal(t, int64(1), w[0][1], "cheapest parallel wins")
	assert.Equal(t, solver.NoArc, w[1][0], "no arc 3→1")
	assert.Equal(t, solver.NoArc, w[0][0])
}

func TestArborescenceMatrix_WindyDirections(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(2)
	g.AddLink(1, 2, 3, core.WithReverseCost(8))

	w, err := solver.ArborescenceMatrix(g, 2)
	require.NoError(t, err)
	// root 2 occupies the last slot; vertex 1 sits at slot 0
	assert.Equal(t, int64(3), w[0][1])
	assert.Equal(t, int64(8), w[1][0])
}

func TestTranslateArborescence(t *testing.T) {
	g, _ := core.New(core.NewIDSource(), core.WithDirected(true))
	g.AddVertices(3)
	l1, _ := g.AddLink(2, 1, 4)
	l2, _ := g.AddLink(1, 3, 1)
	g.AddLink(1, 3, 9)

	// root 2: slot 0 = vertex 1 fed from root slot 2, slot 1 = vertex 3
	// fed from vertex 1 (slot 0)
	links, err := solver.TranslateArborescence(g, 2, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{l1.ID(), l2.ID()}, links)
}

func TestTranslateArborescence_Validation(t *testing.T) {
	g, _ := core.New(core.NewIDSource(), core.WithDirected(true))
	g.AddVertices(3)
	g.AddLink(1, 2, 1)

	_, err := solver.TranslateArborescence(g, 9, []int{0, 1})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = solver.TranslateArborescence(g, 1, []int{0})
	assert.ErrorIs(t, err, solver.ErrBadPredecessors)

	_, err = solver.TranslateArborescence(g, 1, []int{0, 5})
	assert.ErrorIs(t, err, solver.ErrBadPredecessors)

	// pred demands an arc that does not exist
	_, err = solver.TranslateArborescence(g, 1, []int{2, 0})
	assert.ErrorIs(t, err, core.ErrLinkNotFound)
}

func TestBuildMatchingGraph(t *testing.T) {
	// path 1—2—3—4: odd-degree vertices are 1 and 4
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(4)
	g.AddLink(1, 2, 2)
	g.AddLink(2, 3, 3)
	g.AddLink(3, 4, 4)

	n := g.VertexCount()
	dist := make([][]int64, n+1)
	next := make([][]int, n+1)
	link := make([][]int, n+1)
	for i := range dist {
		dist[i] = make([]int64, n+1)
		next[i] = make([]int, n+1)
		link[i] = make([]int, n+1)
	}
	require.NoError(t, shortest.FloydWarshall(g, dist, next, link))

	mg, err := solver.BuildMatchingGraph(g, []int{1, 4}, dist)
	require.NoError(t, err)

	assert.Equal(t, 2, mg.VertexCount())
	assert.Equal(t, 1, mg.LinkCount())
	v1, _ := mg.Vertex(1)
	v2, _ := mg.Vertex(2)
	assert.Equal(t, 1, v1.MatchID())
	assert.Equal(t, 4, v2.MatchID())
	l, _ := mg.Link(1)
	assert.Equal(t, int64(9), l.Cost())
	assert.False(t, l.Directed())
}

func TestBuildMatchingGraph_Validation(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 1)

	n := g.VertexCount()
	dist := make([][]int64, n+1)
	for i := range dist {
		dist[i] = make([]int64, n+1)
	}
	require.NoError(t, shortest.FloydWarshall(g, dist, nil, nil))

	_, err := solver.BuildMatchingGraph(g, []int{1}, dist)
	assert.ErrorIs(t, err, solver.ErrOddCount)

	_, err = solver.BuildMatchingGraph(g, []int{1, 9}, dist)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// vertex 3 is isolated: pairing it with 1 has no price
	_, err = solver.BuildMatchingGraph(g, []int{1, 3}, dist)
	assert.ErrorIs(t, err, solver.ErrUnreachablePair)

	_, err = solver.BuildMatchingGraph(g, []int{1, 2}, dist[:2])
	assert.ErrorIs(t, err, shortest.ErrDimension)
}
