package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclib/arcgraph/core"
	"github.com/arclib/arcgraph/shortest"
)

// ringWithChords builds an n-vertex ring plus sparse chord edges.
func ringWithChords(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.New(core.NewIDSource())
	require.NoError(b, err)
	g.AddVertices(n)
	for i := 1; i <= n; i++ {
		g.AddLink(i, i%n+1, int64(i%7+1))
	}
	for i := 1; i+17 <= n; i += 17 {
		g.AddLink(i, i+17, 3)
	}

	return g
}

func BenchmarkDijkstra(b *testing.B) {
	g := ringWithChords(b, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortest.Dijkstra(g, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSLF(b *testing.B) {
	g := ringWithChords(b, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortest.SLF(g, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFloydWarshall(b *testing.B) {
	g := ringWithChords(b, 128)
	dist, next, link := allPairsMatrices(g.VertexCount())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := shortest.FloydWarshall(g, dist, next, link); err != nil {
			b.Fatal(err)
		}
	}
}
