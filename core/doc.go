// Package core defines the central Graph, Vertex, and Link types used by
// every algorithm in arcgraph.
//
// A Graph is a multigraph over densely numbered vertices (ids 1..N, assigned
// on insertion) and links (ids 1..M, assigned on insertion; removal may leave
// gaps that the next DeepCopy compacts away). A Link is a single tagged
// variant covering all flavors of road-network connections:
//
//   - Edge:  undirected, one cost valid in either traversal direction.
//   - Arc:   directed, one cost.
//   - Windy: undirected topology with two independent costs, one per
//     traversal direction (set via WithReverseCost).
//
// A graph holding both directed and undirected links is a mixed graph; no
// separate type exists for it.
//
// Identity is three-layered:
//
//   - guid:     unique within an IDSource session, across all graphs built
//     from it (never reused, survives copies).
//   - id:       graph-local, dense, the index into this graph's link table.
//   - match id: advisory integer correlating a link (or vertex) with its
//     counterpart in another graph - a deep copy, a directed
//     projection, a transformed working graph. It is a key for an
//     explicit lookup, never a live reference.
//
// DeepCopy assigns fresh dense ids and sets each copied entity's match id to
// its source entity's graph-local id, which is how every transform in the
// engine maps results back to the caller's graph.
//
// Contents are mutated only through AddVertex/AddLink/RemoveLink (and the
// cost/capacity/demand setters); adjacency maps of both endpoints are
// updated atomically with the link table. Referencing a missing vertex or
// link id is a programming error (a dangling match id or a stale id after a
// copy) and fails fast with ErrVertexNotFound/ErrLinkNotFound.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist in this graph.
//	ErrLinkNotFound   - requested link does not exist in this graph.
//	ErrNilIDSource    - graph constructed without an identity source.
package core
