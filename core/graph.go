// Package core: Graph construction, mutation, and query methods.
//
// Adjacency is stored as a nested map adj[vertexID][neighborID] = []*Link,
// giving constant-time bucket access and preserving parallel links. Every
// add/remove keeps the link table and both endpoints' adjacency buckets in
// step; there is no way to observe a half-applied mutation.

package core

import (
	"fmt"
	"sort"
)

// Graph is a mutable multigraph with dense integer ids.
//
// The zero value is not usable; construct with New. A Graph is not safe for
// concurrent mutation - the engine is single-threaded by design and callers
// own each graph exclusively for the duration of an algorithm invocation.
type Graph struct {
	ids      *IDSource
	directed bool // default orientation for new links

	vertices map[int]*Vertex
	links    map[int]*Link

	// adj[from][to] lists the links joining from and to. Undirected links
	// appear in both orientations' buckets.
	adj map[int]map[int][]*Link

	nextVertexID int
	nextLinkID   int // highest link id ever assigned (gaps possible after removal)

	depot int
}

// New creates an empty Graph drawing link guids from ids.
// By default links are undirected; pass WithDirected(true) for a digraph.
// Complexity: O(1).
func New(ids *IDSource, opts ...GraphOption) (*Graph, error) {
	if ids == nil {
		return nil, ErrNilIDSource
	}
	g := &Graph{
		ids:      ids,
		vertices: make(map[int]*Vertex),
		links:    make(map[int]*Link),
		adj:      make(map[int]map[int][]*Link),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Directed reports the default orientation applied to new links.
func (g *Graph) Directed() bool { return g.directed }

// IDs returns the identity source shared by this graph family.
func (g *Graph) IDs() *IDSource { return g.ids }

// AddVertex inserts a new vertex and returns it. Ids are dense: the kth
// inserted vertex has id k. Complexity: O(1).
func (g *Graph) AddVertex() *Vertex {
	g.nextVertexID++
	v := &Vertex{id: g.nextVertexID}
	g.vertices[v.id] = v
	g.adj[v.id] = make(map[int][]*Link)

	return v
}

// AddVertices inserts n vertices at once. Convenience for building working
// graphs sized to match an existing one.
func (g *Graph) AddVertices(n int) {
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
}

// Vertex returns the vertex with the given id.
// A missing id is a broken invariant, reported as ErrVertexNotFound.
func (g *Graph) Vertex(id int) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}

	return v, nil
}

// HasVertex reports whether a vertex with the given id exists.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// AddLink inserts a link from tail to head with the given cost, applying
// the graph's default orientation unless overridden by options, and returns
// it. Both endpoints must already exist. Complexity: O(1).
func (g *Graph) AddLink(tail, head int, cost int64, opts ...LinkOption) (*Link, error) {
	if _, ok := g.vertices[tail]; !ok {
		return nil, fmt.Errorf("%w: tail %d", ErrVertexNotFound, tail)
	}
	if _, ok := g.vertices[head]; !ok {
		return nil, fmt.Errorf("%w: head %d", ErrVertexNotFound, head)
	}

	g.nextLinkID++
	l := &Link{
		guid:     g.ids.Next(),
		id:       g.nextLinkID,
		tail:     tail,
		head:     head,
		cost:     cost,
		directed: g.directed,
	}
	for _, opt := range opts {
		opt(l)
	}

	g.links[l.id] = l
	g.adj[tail][head] = append(g.adj[tail][head], l)
	if !l.directed && tail != head {
		g.adj[head][tail] = append(g.adj[head][tail], l)
	}

	return l, nil
}

// RemoveLink deletes the link with the given id from the link table and from
// both endpoints' adjacency buckets. The id is not reused; DeepCopy compacts
// gaps. Complexity: O(parallel links between the endpoints).
func (g *Graph) RemoveLink(id int) error {
	l, ok := g.links[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrLinkNotFound, id)
	}
	delete(g.links, id)
	g.dropFromBucket(l.tail, l.head, id)
	if !l.directed && l.tail != l.head {
		g.dropFromBucket(l.head, l.tail, id)
	}

	return nil
}

// dropFromBucket removes link id from adj[from][to], deleting the bucket
// when it empties.
func (g *Graph) dropFromBucket(from, to, id int) {
	bucket := g.adj[from][to]
	for i, l := range bucket {
		if l.id == id {
			g.adj[from][to] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(g.adj[from][to]) == 0 {
		delete(g.adj[from], to)
	}
}

// Link returns the link with the given id.
// A missing id is a broken invariant, reported as ErrLinkNotFound.
func (g *Graph) Link(id int) (*Link, error) {
	l, ok := g.links[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrLinkNotFound, id)
	}

	return l, nil
}

// HasLink reports whether a link with the given id exists.
func (g *Graph) HasLink(id int) bool {
	_, ok := g.links[id]

	return ok
}

// FindLinks returns every link joining a and b, in either multigraph
// orientation, sorted by id. Complexity: O(k log k) for k parallel links.
func (g *Graph) FindLinks(a, b int) []*Link {
	seen := make(map[int]*Link)
	for _, l := range g.adj[a][b] {
		seen[l.id] = l
	}
	for _, l := range g.adj[b][a] {
		seen[l.id] = l
	}
	out := make([]*Link, 0, len(seen))
	for _, l := range seen {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Neighbors returns a snapshot of the adjacency of vertex id: neighbor
// vertex id → links joining them. Undirected links appear in both
// endpoints' views; directed links only in the tail's. Complexity: O(deg).
func (g *Graph) Neighbors(id int) (map[int][]*Link, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}
	out := make(map[int][]*Link, len(g.adj[id]))
	for nb, bucket := range g.adj[id] {
		out[nb] = append([]*Link(nil), bucket...)
	}

	return out, nil
}

// Vertices returns all vertices sorted by id. Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Links returns all links sorted by id. Complexity: O(M log M).
func (g *Graph) Links() []*Link {
	out := make([]*Link, 0, len(g.links))
	for _, l := range g.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// LinkCount returns the number of links. O(1).
func (g *Graph) LinkCount() int { return len(g.links) }

// MaxLinkID returns the highest link id ever assigned in this graph.
// After removals this may exceed LinkCount; result slices indexed by link id
// must be sized MaxLinkID()+1.
func (g *Graph) MaxLinkID() int { return g.nextLinkID }

// SetDepot designates the route's start/end vertex.
func (g *Graph) SetDepot(id int) error {
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: depot %d", ErrVertexNotFound, id)
	}
	g.depot = id

	return nil
}

// Depot returns the designated depot vertex id (0 when unset).
func (g *Graph) Depot() int { return g.depot }

// Degree returns the undirected degree of vertex id: each incident
// undirected link contributes 1, a self-loop contributes 2. Directed links
// do not count. Complexity: O(deg).
func (g *Graph) Degree(id int) (int, error) {
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}
	deg := 0
	for nb, bucket := range g.adj[id] {
		for _, l := range bucket {
			if l.directed {
				continue
			}
			if nb == id {
				deg += 2 // self-loop: both endpoints here
				continue
			}
			deg++
		}
	}

	return deg, nil
}

// OutDegree returns the number of arcs whose tail is vertex id.
func (g *Graph) OutDegree(id int) (int, error) {
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}
	out := 0
	for _, bucket := range g.adj[id] {
		for _, l := range bucket {
			if l.directed && l.tail == id {
				out++
			}
		}
	}

	return out, nil
}

// InDegree returns the number of arcs whose head is vertex id.
func (g *Graph) InDegree(id int) (int, error) {
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}
	in := 0
	for _, l := range g.links {
		if l.directed && l.head == id {
			in++
		}
	}

	return in, nil
}

// Delta returns out-degree minus in-degree over directed links.
func (g *Graph) Delta(id int) (int, error) {
	out, err := g.OutDegree(id)
	if err != nil {
		return 0, err
	}
	in, err := g.InDegree(id)
	if err != nil {
		return 0, err
	}

	return out - in, nil
}

// HasDirectedLinks reports whether at least one link is an arc.
func (g *Graph) HasDirectedLinks() bool {
	for _, l := range g.links {
		if l.directed {
			return true
		}
	}

	return false
}

// HasUndirectedLinks reports whether at least one link is an edge
// (windy links included).
func (g *Graph) HasUndirectedLinks() bool {
	for _, l := range g.links {
		if !l.directed {
			return true
		}
	}

	return false
}

// HasWindyLinks reports whether at least one link carries asymmetric costs.
func (g *Graph) HasWindyLinks() bool {
	for _, l := range g.links {
		if l.hasReverse {
			return true
		}
	}

	return false
}
