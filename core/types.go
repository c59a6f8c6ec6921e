// Package core: type declarations, sentinel errors, and the functional
// options applied at graph and link construction time.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrNilIDSource indicates New was called without an identity source.
	ErrNilIDSource = errors.New("core: nil IDSource")
)

// IDSource generates session-unique link guids. It replaces a process-wide
// counter so that tests (and independent construction sessions) get
// deterministic, resettable identity streams.
//
// An IDSource is shared by a graph and all graphs derived from it
// (DeepCopy, projections), so guids stay unique across the whole family.
type IDSource struct {
	next int
}

// NewIDSource returns a fresh source whose first guid is 1.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next guid. Guids are monotonically increasing and never
// reused within one source.
func (s *IDSource) Next() int {
	s.next++

	return s.next
}

// Reset rewinds the source so the next guid is 1 again. Intended for tests.
func (s *IDSource) Reset() {
	s.next = 0
}

// Vertex is a node of a Graph.
//
// The graph-local id is dense (1..N) and assigned on insertion. The match id
// is advisory cross-graph correlation metadata (see package doc). Demand is
// optional: an unset demand is distinct from a demand of zero.
type Vertex struct {
	id      int
	matchID int

	demand    int64
	hasDemand bool

	x, y      float64
	hasCoords bool
}

// ID returns the graph-local dense id (1..N).
func (v *Vertex) ID() int { return v.id }

// MatchID returns the advisory correlation id (0 when never set).
func (v *Vertex) MatchID() int { return v.matchID }

// SetMatchID records the advisory correlation id.
func (v *Vertex) SetMatchID(id int) { v.matchID = id }

// Demand reports the vertex's signed supply (>0) or demand (<0) value.
// The second return is false when no demand was ever set, which callers
// must treat differently from a demand of zero.
func (v *Vertex) Demand() (int64, bool) { return v.demand, v.hasDemand }

// SetDemand assigns the signed demand value.
func (v *Vertex) SetDemand(d int64) {
	v.demand = d
	v.hasDemand = true
}

// ClearDemand returns the vertex to the "no demand set" state.
func (v *Vertex) ClearDemand() {
	v.demand = 0
	v.hasDemand = false
}

// SetCoords records optional planar coordinates.
func (v *Vertex) SetCoords(x, y float64) {
	v.x, v.y = x, y
	v.hasCoords = true
}

// Coords returns the planar coordinates; ok is false when never set.
func (v *Vertex) Coords() (x, y float64, ok bool) { return v.x, v.y, v.hasCoords }

// Link is a connection between two vertices: an undirected edge, a directed
// arc, or a windy (asymmetric-cost) edge, discriminated by Directed and the
// presence of a reverse cost rather than by distinct types.
type Link struct {
	guid    int
	id      int
	matchID int

	tail, head int

	cost       int64
	reverse    int64
	hasReverse bool

	directed bool

	capacity int64
	hasCap   bool

	required bool
}

// GUID returns the session-unique identity assigned at construction.
func (l *Link) GUID() int { return l.guid }

// ID returns the graph-local id (dense on insertion).
func (l *Link) ID() int { return l.id }

// MatchID returns the advisory correlation id (0 when never set).
func (l *Link) MatchID() int { return l.matchID }

// SetMatchID records the advisory correlation id.
func (l *Link) SetMatchID(id int) { l.matchID = id }

// Tail returns the first endpoint's vertex id (the tail for an arc).
func (l *Link) Tail() int { return l.tail }

// Head returns the second endpoint's vertex id (the head for an arc).
func (l *Link) Head() int { return l.head }

// Other returns the endpoint opposite to vid. For a self-loop it returns vid.
func (l *Link) Other(vid int) int {
	if l.tail == vid {
		return l.head
	}

	return l.tail
}

// Cost returns the traversal cost (tail→head for windy links).
func (l *Link) Cost() int64 { return l.cost }

// SetCost replaces the traversal cost. Used by cost-reduction passes; it
// never changes identity.
func (l *Link) SetCost(c int64) { l.cost = c }

// Directed reports whether this link is an arc (one-way tail→head).
func (l *Link) Directed() bool { return l.directed }

// ReverseCost returns the head→tail traversal cost of a windy link;
// ok is false for symmetric links.
func (l *Link) ReverseCost() (int64, bool) { return l.reverse, l.hasReverse }

// Windy reports whether the link carries asymmetric per-direction costs.
func (l *Link) Windy() bool { return l.hasReverse }

// Capacity returns the flow capacity; ok is false when unbounded.
func (l *Link) Capacity() (int64, bool) { return l.capacity, l.hasCap }

// SetCapacity bounds the link's flow capacity.
func (l *Link) SetCapacity(c int64) {
	l.capacity = c
	l.hasCap = true
}

// ClearCapacity returns the link to the unbounded state.
func (l *Link) ClearCapacity() {
	l.capacity = 0
	l.hasCap = false
}

// Required reports whether a route must cover this link.
func (l *Link) Required() bool { return l.required }

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithDirected sets the default directedness applied to links added without
// a per-link override (true = arcs, false = edges).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// LinkOption configures an individual link when added.
type LinkOption func(*Link)

// WithLinkDirected overrides the graph's default directedness for one link,
// making the graph mixed when it disagrees with the rest.
func WithLinkDirected(directed bool) LinkOption {
	return func(l *Link) { l.directed = directed }
}

// WithReverseCost gives the link an independent head→tail cost, making it a
// windy link. Windy links are undirected by topology.
func WithReverseCost(c int64) LinkOption {
	return func(l *Link) {
		l.reverse = c
		l.hasReverse = true
		l.directed = false
	}
}

// WithCapacity bounds the link's flow capacity. Absent = unbounded.
func WithCapacity(c int64) LinkOption {
	return func(l *Link) {
		l.capacity = c
		l.hasCap = true
	}
}

// WithRequired marks the link as one a route must cover.
func WithRequired() LinkOption {
	return func(l *Link) { l.required = true }
}

// WithMatchID seeds the advisory correlation id at construction.
func WithMatchID(id int) LinkOption {
	return func(l *Link) { l.matchID = id }
}
