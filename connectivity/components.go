package connectivity

import "github.com/arclib/arcgraph/core"

// ConnectedComponents labels the weakly connected components of a graph
// given in flat 1-indexed form: n vertices and links tails[i]→heads[i] for
// i in 1..m (slot 0 of both slices is unused). Orientation is ignored.
//
// It returns the component count and a labeling comp of length n+1 with
// comp[v] in 1..count. With no links every vertex is its own component.
// Complexity: O(n + m·α(n)).
func ConnectedComponents(n int, tails, heads []int) (int, []int, error) {
	m, err := validate(n, tails, heads)
	if err != nil {
		return 0, nil, err
	}

	// 1. Union-find merge over the link list.
	parent := make([]int, n+1)
	for v := 1; v <= n; v++ {
		parent[v] = v
	}
	var find func(v int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]] // halve the path
			v = parent[v]
		}

		return v
	}
	for i := 1; i <= m; i++ {
		a, b := find(tails[i]), find(heads[i])
		if a != b {
			parent[b] = a
		}
	}

	// 2. Relabel roots to dense component numbers in vertex order.
	comp := make([]int, n+1)
	count := 0
	for v := 1; v <= n; v++ {
		r := find(v)
		if comp[r] == 0 {
			count++
			comp[r] = count
		}
		comp[v] = comp[r]
	}

	return count, comp, nil
}

// Components flattens g (ignoring orientation) and labels its components.
// The returned labeling is indexed by vertex id.
func Components(g *core.Graph) (int, []int, error) {
	n := g.VertexCount()
	links := g.Links()
	tails := make([]int, len(links)+1)
	heads := make([]int, len(links)+1)
	for i, l := range links {
		tails[i+1] = l.Tail()
		heads[i+1] = l.Head()
	}

	return ConnectedComponents(n, tails, heads)
}

// IsConnected reports whether g is connected when orientation is ignored.
// The empty graph is connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g.VertexCount() == 0 {
		return true, nil
	}
	count, _, err := Components(g)
	if err != nil {
		return false, err
	}

	return count == 1, nil
}
