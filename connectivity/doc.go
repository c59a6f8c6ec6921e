// Package connectivity computes connected and strongly connected components.
//
// The two kernels work on a flat 1-indexed array encoding: n vertices
// numbered 1..n and m links given as parallel tails/heads slices of length
// m+1 with slot 0 unused. This layout lets callers run the kernels on graphs,
// projections, or raw link lists without building a core.Graph first. The
// package also provides convenience wrappers over *core.Graph that flatten
// the graph, run the kernel, and interpret the answer.
//
//   - ConnectedComponents ignores link orientation entirely.
//   - StronglyConnectedComponents treats every (tail, head) pair as a
//     one-way arc; feed an undirected link as two opposite arcs.
//
// Both return the component count together with a labeling comp of length
// n+1, comp[v] ∈ 1..count. A graph with no links has n components. The
// labels are deterministic for a fixed input.
//
// Complexity: ConnectedComponents is near O(n + m) (union-find),
// StronglyConnectedComponents is O(n + m) (one-pass depth-first search).
package connectivity
