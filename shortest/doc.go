// Package shortest computes single-source and all-pairs shortest paths over
// core graphs of any link mixture.
//
// Every algorithm first projects the graph onto a directed view: an arc
// stays one arc, an edge becomes two opposite arcs of equal cost, and a
// windy link becomes two opposite arcs carrying its forward and reverse
// costs. Parallel arcs between an ordered pair collapse to the cheapest
// one. Each projected arc remembers the originating link's id, so results
// always report links of the caller's graph.
//
// Single-source algorithms return a Result holding 1-indexed distance,
// predecessor-vertex, and predecessor-link slices:
//
//   - Dijkstra: binary-heap label setting, O((V+E) log V). Costs must be
//     non-negative; behavior on negative costs is undefined.
//   - BellmanFord, Pape, SLF: label-correcting variants sharing one deque
//     scan loop and differing only in queue discipline (FIFO, Pape's
//     front-if-seen rule, smallest-label-first). They accept negative
//     costs and report a negative cycle as a *NegativeCycleError carrying
//     the cycle itself. Worst case O(V·E).
//
// FloydWarshall fills caller-allocated (V+1)×(V+1) distance, next-hop, and
// link matrices in O(V³); AddShortestPath and RemoveShortestPath then
// splice a cheapest path's links into or out of a graph by walking those
// matrices.
package shortest
