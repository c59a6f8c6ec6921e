// Package mincostflow solves minimum-cost flow on directed graphs by
// successive shortest augmenting paths.
//
// Vertices declare imbalances through their demand attribute: a positive
// demand supplies flow, a negative demand consumes it, and vertices with no
// demand set are pure transshipment points. Solve connects a super source
// to every supplier and every consumer to a super sink, both through
// zero-cost arcs capped at the absolute demand, then augments along
// cheapest residual paths until all demand is met.
//
// Costs are kept non-negative across iterations with the standard
// potential trick: one label-correcting pass (which tolerates negative
// input costs) seeds vertex potentials, every arc cost is reduced by the
// potential difference of its endpoints, and after each augmentation the
// Dijkstra distances update the potentials. Residual capacity is
// materialized in the working copy itself: pushing flow shrinks or removes
// the forward arc and grows a reverse arc of negated cost, exactly
// undoing on cancellation. Working arcs stay correlated with the caller's
// links through match ids, so the final per-link flow report never
// mentions the super vertices or reverse arcs.
//
// Complexity: O(F · E log V) for total flow F, plus one O(V·E)
// label-correcting pass.
package mincostflow
