package connectivity

import "github.com/arclib/arcgraph/core"

// StronglyConnectedComponents labels the strongly connected components of a
// digraph given in flat 1-indexed form: n vertices and arcs tails[i]→heads[i]
// for i in 1..m (slot 0 unused). Undirected links must be fed as two
// opposite arcs.
//
// It returns the component count and a labeling comp of length n+1 with
// comp[v] in 1..count. Complexity: O(n + m).
func StronglyConnectedComponents(n int, tails, heads []int) (int, []int, error) {
	m, err := validate(n, tails, heads)
	if err != nil {
		return 0, nil, err
	}

	// 1. Forward-star arc layout: arcs grouped by tail, first[v]..first[v+1]-1.
	first := make([]int, n+2)
	for i := 1; i <= m; i++ {
		first[tails[i]+1]++
	}
	for v := 1; v <= n+1; v++ {
		first[v] += first[v-1]
	}
	target := make([]int, m)
	fill := append([]int(nil), first...)
	for i := 1; i <= m; i++ {
		target[fill[tails[i]]] = heads[i]
		fill[tails[i]]++
	}

	// 2. Iterative depth-first search with lowlink tracking. A vertex whose
	// lowlink equals its own visit sequence closes a component.
	const unvisited = 0
	seq := make([]int, n+1)
	low := make([]int, n+1)
	onStack := make([]bool, n+1)
	comp := make([]int, n+1)
	stack := make([]int, 0, n)

	// explicit recursion frames: vertex + next arc offset to explore
	type frame struct {
		v   int
		arc int
	}
	frames := make([]frame, 0, n)

	next := 0
	count := 0
	for root := 1; root <= n; root++ {
		if seq[root] != unvisited {
			continue
		}
		next++
		seq[root], low[root] = next, next
		stack = append(stack, root)
		onStack[root] = true
		frames = append(frames, frame{v: root, arc: first[root]})

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.arc < first[f.v+1] {
				w := target[f.arc]
				f.arc++
				switch {
				case seq[w] == unvisited:
					next++
					seq[w], low[w] = next, next
					stack = append(stack, w)
					onStack[w] = true
					frames = append(frames, frame{v: w, arc: first[w]})
				case onStack[w]:
					if seq[w] < low[f.v] {
						low[f.v] = seq[w]
					}
				}
				continue
			}

			// all arcs of f.v explored: maybe close a component, then pop
			if low[f.v] == seq[f.v] {
				count++
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = count
					if w == f.v {
						break
					}
				}
			}
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				p := &frames[len(frames)-1]
				if low[f.v] < low[p.v] {
					low[p.v] = low[f.v]
				}
			}
		}
	}

	return count, comp, nil
}

// StrongComponents flattens g and labels its strongly connected components.
// Undirected links (windy included) contribute an arc in each direction.
func StrongComponents(g *core.Graph) (int, []int, error) {
	n := g.VertexCount()
	tails := []int{0}
	heads := []int{0}
	for _, l := range g.Links() {
		tails = append(tails, l.Tail())
		heads = append(heads, l.Head())
		if !l.Directed() {
			tails = append(tails, l.Head())
			heads = append(heads, l.Tail())
		}
	}

	return StronglyConnectedComponents(n, tails, heads)
}

// IsStronglyConnected reports whether every vertex of g reaches every other
// vertex respecting arc orientation. The empty graph is strongly connected.
func IsStronglyConnected(g *core.Graph) (bool, error) {
	if g.VertexCount() == 0 {
		return true, nil
	}
	count, _, err := StrongComponents(g)
	if err != nil {
		return false, err
	}

	return count == 1, nil
}
