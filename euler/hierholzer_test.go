package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclib/arcgraph/core"
	"github.com/arclib/arcgraph/euler"
)

// assertClosedTour checks that tour is a closed walk from start covering
// every link of g exactly once, honoring arc orientation.
func assertClosedTour(t *testing.T, g *core.Graph, tour []int, start int) {
	t.Helper()
	require.Len(t, tour, g.LinkCount())

	used := make(map[int]bool)
	cur := start
	for _, id := range tour {
		l, err := g.Link(id)
		require.NoError(t, err)
		require.False(t, used[id], "link %d traversed twice", id)
		used[id] = true
		if l.Directed() {
			require.Equal(t, cur, l.Tail(), "arc %d entered against orientation", id)
			cur = l.Head()
		} else {
			require.True(t, cur == l.Tail() || cur == l.Head(), "link %d not incident to %d", id, cur)
			cur = l.Other(cur)
		}
	}
	assert.Equal(t, start, cur, "tour must close at its start")
}

func TestTour_UndirectedTriangle(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 3, 1)
	g.AddLink(3, 1, 1)

	tour, err := euler.Tour(g)
	require.NoError(t, err)
	assertClosedTour(t, g, tour, 1)
}

func TestTour_DirectedCycleWithDetour(t *testing.T) {
	// 1→2→3→1 plus the sub-cycle 2→4→2 forces a splice
	g, _ := core.New(core.NewIDSource(), core.WithDirected(true))
	g.AddVertices(4)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 3, 1)
	g.AddLink(3, 1, 1)
	g.AddLink(2, 4, 1)
	g.AddLink(4, 2, 1)

	tour, err := euler.Tour(g)
	require.NoError(t, err)
	assertClosedTour(t, g, tour, 1)
}

func TestTour_MixedGraph(t *testing.T) {
	// undirected triangle plus an arc pair between 1 and 2
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 3, 1)
	g.AddLink(3, 1, 1)
	g.AddLink(1, 2, 1, core.WithLinkDirected(true))
	g.AddLink(2, 1, 1, core.WithLinkDirected(true))

	tour, err := euler.Tour(g)
	require.NoError(t, err)
	assertClosedTour(t, g, tour, 1)
}

func TestTour_WindyLinks(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 4, core.WithReverseCost(9))
	g.AddLink(2, 3, 4, core.WithReverseCost(9))
	g.AddLink(3, 1, 4, core.WithReverseCost(9))

	tour, err := euler.Tour(g)
	require.NoError(t, err)
	assertClosedTour(t, g, tour, 1)
}

func TestTour_StartSelection(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 3, 1)
	g.AddLink(3, 1, 1)

	tour, err := euler.Tour(g, euler.WithStart(3))
	require.NoError(t, err)
	assertClosedTour(t, g, tour, 3)

	// unset start falls back to the depot
	require.NoError(t, g.SetDepot(2))
	tour, err = euler.Tour(g)
	require.NoError(t, err)
	assertClosedTour(t, g, tour, 2)

	_, err = euler.Tour(g, euler.WithStart(9))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestTour_EmptyGraph(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	tour, err := euler.Tour(g)
	require.NoError(t, err)
	assert.Empty(t, tour)
}

func TestTour_OddDegree(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 3, 1)

	_, err := euler.Tour(g)
	assert.ErrorIs(t, err, euler.ErrNotEulerian)
}

func TestTour_DisconnectedComponents(t *testing.T) {
	// two disjoint triangles: degrees pass, connectivity does not
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(6)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 3, 1)
	g.AddLink(3, 1, 1)
	g.AddLink(4, 5, 1)
	g.AddLink(5, 6, 1)
	g.AddLink(6, 4, 1)

	ok, err := euler.IsEulerian(g)
	require.NoError(t, err)
	assert.True(t, ok, "degree check alone passes")

	_, err = euler.Tour(g)
	assert.ErrorIs(t, err, euler.ErrNotConnected)
}

func TestTour_DirectedDisconnected(t *testing.T) {
	g, _ := core.New(core.NewIDSource(), core.WithDirected(true))
	g.AddVertices(4)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 1, 1)
	g.AddLink(3, 4, 1)
	g.AddLink(4, 3, 1)

	_, err := euler.Tour(g)
	assert.ErrorIs(t, err, euler.ErrNotStronglyConnected)
}

func TestTour_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, _ := core.New(core.NewIDSource())
		g.AddVertices(4)
		g.AddLink(1, 2, 1)
		g.AddLink(2, 3, 1)
		g.AddLink(3, 4, 1)
		g.AddLink(4, 1, 1)
		g.AddLink(1, 3, 1)
		g.AddLink(3, 1, 1)

		return g
	}

	a, err := euler.Tour(build())
	require.NoError(t, err)
	b, err := euler.Tour(build())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
