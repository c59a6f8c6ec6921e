package core

// DeepCopy returns an independent duplicate of the graph.
//
// The copy shares the original's IDSource, so guids stay unique across the
// family, but vertex and link ids are reassigned densely (1..N, 1..M) in
// ascending order of the originals, compacting any gaps left by removals.
// Every copied vertex and link gets its match id set to its source entity's
// graph-local id; callers use that to translate results computed on the copy
// back onto the original. The depot designation follows the copy.
//
// Complexity: O(V log V + M log M).
func (g *Graph) DeepCopy() *Graph {
	cp := &Graph{
		ids:      g.ids,
		directed: g.directed,
		vertices: make(map[int]*Vertex, len(g.vertices)),
		links:    make(map[int]*Link, len(g.links)),
		adj:      make(map[int]map[int][]*Link, len(g.vertices)),
	}

	// vmap translates original vertex id → copy vertex id.
	vmap := make(map[int]int, len(g.vertices))
	for _, v := range g.Vertices() {
		nv := cp.AddVertex()
		nv.matchID = v.id
		if v.hasDemand {
			nv.SetDemand(v.demand)
		}
		if v.hasCoords {
			nv.SetCoords(v.x, v.y)
		}
		vmap[v.id] = nv.id
	}

	for _, l := range g.Links() {
		cp.nextLinkID++
		nl := &Link{
			guid:       cp.ids.Next(),
			id:         cp.nextLinkID,
			matchID:    l.id,
			tail:       vmap[l.tail],
			head:       vmap[l.head],
			cost:       l.cost,
			reverse:    l.reverse,
			hasReverse: l.hasReverse,
			directed:   l.directed,
			capacity:   l.capacity,
			hasCap:     l.hasCap,
			required:   l.required,
		}
		cp.links[nl.id] = nl
		cp.adj[nl.tail][nl.head] = append(cp.adj[nl.tail][nl.head], nl)
		if !nl.directed && nl.tail != nl.head {
			cp.adj[nl.head][nl.tail] = append(cp.adj[nl.head][nl.tail], nl)
		}
	}

	if g.depot != 0 {
		cp.depot = vmap[g.depot]
	}

	return cp
}
