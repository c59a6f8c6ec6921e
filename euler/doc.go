// Package euler checks Eulerian structure and extracts closed Euler tours.
//
// IsEulerian dispatches on the graph's link mixture: an all-directed graph
// needs zero in/out imbalance at every vertex, an all-undirected graph
// needs even degree at every vertex, and a mixed graph needs both at once
// (IsStronglyEulerian). Degree conditions alone do not imply a single tour
// exists; Tour additionally verifies that all links live in one (strongly)
// connected component.
//
// Mixed graphs are reduced before touring: DirectUndirectedCycles copies
// the arcs and orients every undirected link by walking the closed trails
// their even degrees guarantee, producing a fully directed graph whose
// links carry match ids pointing back at the source links.
//
// Tour runs Hierholzer's trail-splicing on a deep copy: walk a closed
// sub-trail until it returns to its start, splice it into the main trail at
// that vertex's first occurrence, then continue from any trail vertex that
// still has unused links. Link choice is always the lowest unused id, so
// tours are deterministic. Complexity: O(E²) from splice-point scans, in
// practice near O(E) on road networks.
package euler
