package euler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclib/arcgraph/core"
	"github.com/arclib/arcgraph/euler"
)

func BenchmarkTour(b *testing.B) {
	// a doubled ring: every vertex has degree 4, lots of splicing
	const n = 256
	g, err := core.New(core.NewIDSource())
	require.NoError(b, err)
	g.AddVertices(n)
	for i := 1; i <= n; i++ {
		g.AddLink(i, i%n+1, 1)
		g.AddLink(i, i%n+1, 2)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := euler.Tour(g); err != nil {
			b.Fatal(err)
		}
	}
}
