// Package solver declares the seams where arc-routing heuristics plug in
// external optimization engines, plus the translation helpers those seams
// need.
//
// The engine computes graph primitives; minimum-weight matching, graph
// partitioning, and minimum spanning arborescence are delegated to
// specialized solvers behind the Matcher, Partitioner, and
// ArborescenceSolver interfaces. The helpers adapt between core graphs and
// the dense formats such solvers consume:
//
//   - BuildMatchingGraph assembles the complete odd-vertex graph a blossom
//     matcher runs on, pricing edges from an all-pairs distance matrix.
//   - ArborescenceMatrix and TranslateArborescence convert to and from the
//     root-last slot layout arborescence codes expect.
package solver
