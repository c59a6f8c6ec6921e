package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclib/arcgraph/core"
)

func TestDeepCopy_Independence(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 5)
	l, _ := g.AddLink(2, 3, 7, core.WithLinkDirected(true))

	cp := g.DeepCopy()

	require.NoError(t, cp.RemoveLink(1))
	cl, err := cp.Link(2)
	require.NoError(t, err)
	cl.SetCost(99)

	// original untouched
	assert.Equal(t, 2, g.LinkCount())
	assert.Equal(t, int64(7), l.Cost())
}

func TestDeepCopy_MatchIDsPointAtSource(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 1)
	g.AddLink(2, 3, 2)
	g.AddLink(3, 1, 3)

	cp := g.DeepCopy()

	for _, cl := range cp.Links() {
		src, err := g.Link(cl.MatchID())
		require.NoError(t, err, "match id %d must resolve in the source", cl.MatchID())
		assert.Equal(t, src.Cost(), cl.Cost())
	}
	for _, cv := range cp.Vertices() {
		assert.Equal(t, cv.ID(), cv.MatchID(), "no removals: dense ids line up")
	}
}

func TestDeepCopy_CompactsLinkIDGaps(t *testing.T) {
	g, _ := core.New(core.NewIDSource())
	g.AddVertices(3)
	g.AddLink(1, 2, 10)
	g.AddLink(2, 3, 20)
	g.AddLink(3, 1, 30)
	require.NoError(t, g.RemoveLink(2))
	require.Equal(t, 3, g.MaxLinkID())

	cp := g.DeepCopy()

	assert.Equal(t, 2, cp.LinkCount())
	assert.Equal(t, 2, cp.MaxLinkID(), "copy ids are dense again")

	l1, err := cp.Link(1)
	require.NoError(t, err)
	l2, err := cp.Link(2)
	require.NoError(t, err)
	assert.Equal(t, 1, l1.MatchID())
	assert.Equal(t, int64(10), l1.Cost())
	assert.Equal(t, 3, l2.MatchID(), "match id preserves the source's original id across the gap")
	assert.Equal(t, int64(30), l2.Cost())
}

func TestDeepCopy_PreservesAttributes(t *testing.T) {
	g, _ := core.New(core.NewIDSource(), core.WithDirected(true))
	v1 := g.AddVertex()
	g.AddVertex()
	v1.SetDemand(-4)
	v1.SetCoords(1.5, 2.5)
	g.AddLink(1, 2, 8, core.WithReverseCost(11), core.WithCapacity(3), core.WithRequired())
	require.NoError(t, g.SetDepot(2))

	cp := g.DeepCopy()

	assert.True(t, cp.Directed())
	assert.Equal(t, 2, cp.Depot())

	cv, _ := cp.Vertex(1)
	d, ok := cv.Demand()
	require.True(t, ok)
	assert.Equal(t, int64(-4), d)
	x, y, ok := cv.Coords()
	require.True(t, ok)
	assert.Equal(t, 1.5, x)
	assert.Equal(t, 2.5, y)

	cl, _ := cp.Link(1)
	rc, ok := cl.ReverseCost()
	require.True(t, ok)
	assert.Equal(t, int64(11), rc)
	cap_, ok := cl.Capacity()
	require.True(t, ok)
	assert.Equal(t, int64(3), cap_)
	assert.True(t, cl.Required())
}

func TestDeepCopy_FreshGUIDs(t *testing.T) {
	ids := core.NewIDSource()
	g, _ := core.New(ids)
	g.AddVertices(2)
	l, _ := g.AddLink(1, 2, 1)

	cp := g.DeepCopy()
	cl, _ := cp.Link(1)

	assert.NotEqual(t, l.GUID(), cl.GUID(), "copies draw fresh guids from the shared source")
}
