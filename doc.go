// Package arcgraph is a graph-algorithms engine for arc-routing solvers
// (postman-type problems: compute a minimum-cost closed walk that covers
// every required link of a road network at least once).
//
// The engine implements the numeric graph primitives that heuristic
// arc-routing solvers compose, organized one package per algorithm family:
//
//	core/         — vertices, links (edges, arcs, windy links) and graphs
//	connectivity/ — connected components and strongly connected components
//	shortest/     — Dijkstra, label-correcting variants, Floyd–Warshall
//	euler/        — Eulerian checks, mixed-graph reduction, Hierholzer tours
//	mincostflow/  — min-cost flow via successive shortest augmenting paths
//	solver/       — contracts for external matching/partition/arborescence
//
// All computation is single-threaded, synchronous and CPU-bound: every
// operation runs to completion or fails with an explicit error. Graphs,
// distance matrices and flow results are exclusively owned by the caller;
// algorithms work on deep copies and never retain references across calls.
package arcgraph
