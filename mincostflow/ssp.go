package mincostflow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arclib/arcgraph/core"
	"github.com/arclib/arcgraph/shortest"
)

// Solve computes a minimum-cost flow satisfying the vertex demands of g.
//
// Every link of g must be a directed arc (ErrUndirectedLink otherwise).
// Arc capacities bound flow where set; an arc without a capacity is
// unbounded. The result is indexed by link id (length g.MaxLinkID()+1,
// slot 0 unused): result[id] is the flow assigned to that arc. A graph
// with no demands set, or only zero demands, gets the zero flow.
//
// Demands must sum to zero and be jointly satisfiable, else ErrInfeasible.
// A negative-cost cycle of arcs surfaces as *shortest.NegativeCycleError.
// g itself is never modified.
func Solve(g *core.Graph, opts ...Option) ([]int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.HasUndirectedLinks() {
		return nil, ErrUndirectedLink
	}

	flows := make([]int64, g.MaxLinkID()+1)

	// 1. Tally declared imbalances; all-zero means nothing to route.
	var supply, demand int64
	for _, v := range g.Vertices() {
		d, ok := v.Demand()
		if !ok {
			continue
		}
		if d > 0 {
			supply += d
		} else {
			demand -= d
		}
	}
	if supply == 0 && demand == 0 {
		return flows, nil
	}
	if supply != demand {
		return nil, fmt.Errorf("%w: supply %d vs demand %d", ErrInfeasible, supply, demand)
	}

	// 2. Working copy with super source and sink. Synthetic arcs get match
	// ids above the caller's id range so they can never shadow a real link.
	cp := g.DeepCopy()
	src := cp.AddVertex().ID()
	sink := cp.AddVertex().ID()
	synth := g.MaxLinkID()
	for _, v := range cp.Vertices() {
		d, ok := v.Demand()
		if !ok || d == 0 {
			continue
		}
		synth++
		var err error
		if d > 0 {
			_, err = cp.AddLink(src, v.ID(), 0,
				core.WithLinkDirected(true), core.WithCapacity(d), core.WithMatchID(synth))
		} else {
			_, err = cp.AddLink(v.ID(), sink, 0,
				core.WithLinkDirected(true), core.WithCapacity(-d), core.WithMatchID(synth))
		}
		if err != nil {
			return nil, err
		}
	}

	// forward and reverse residual arcs per match key
	fwd := make(map[int]int)
	rev := make(map[int]int)
	for _, l := range cp.Links() {
		fwd[l.MatchID()] = l.ID()
	}
	flow := make(map[int]int64)

	// 3. Seed potentials with one label-correcting pass and reduce every
	// arc whose endpoints it reached.
	seed, err := shortest.SLF(cp, src)
	if err != nil {
		return nil, err
	}
	if !seed.Reached(sink) {
		return nil, fmt.Errorf("%w: sink unreachable from suppliers", ErrInfeasible)
	}
	reduce(cp, seed)

	// 4. Augment along cheapest residual paths until demand is met.
	remaining := demand
	iters := 0
	for remaining > 0 {
		res, err := shortest.Dijkstra(cp, src)
		if err != nil {
			return nil, err
		}
		if !res.Reached(sink) {
			break
		}
		_, pathLinks, err := res.PathTo(sink)
		if err != nil {
			return nil, err
		}

		push, err := bottleneck(cp, pathLinks, remaining)
		if err != nil {
			return nil, err
		}
		if err := applyPush(cp, pathLinks, push, fwd, rev, flow); err != nil {
			return nil, err
		}
		reduce(cp, res)
		remaining -= push
		iters++
		o.Logger.Debug("augmented",
			zap.Int64("push", push), zap.Int64("remaining", remaining), zap.Int("iteration", iters))
	}
	if remaining > 0 {
		return nil, fmt.Errorf("%w: %d units unroutable", ErrInfeasible, remaining)
	}

	// 5. Translate working flow back onto the caller's link ids; synthetic
	// keys fall outside the slice and are dropped.
	for key, f := range flow {
		if key >= 1 && key < len(flows) && g.HasLink(key) {
			flows[key] = f
		}
	}

	return flows, nil
}

// reduce rewrites every arc cost by the potential difference of its
// endpoints, skipping arcs touching vertices the pass did not reach.
// On vertices along a cheapest path this drives reduced costs to zero,
// keeping the next Dijkstra run valid.
func reduce(cp *core.Graph, res *shortest.Result) {
	for _, l := range cp.Links() {
		if !res.Reached(l.Tail()) || !res.Reached(l.Head()) {
			continue
		}
		l.SetCost(l.Cost() + res.Dist[l.Tail()] - res.Dist[l.Head()])
	}
}

// bottleneck returns the largest pushable amount along the path: the
// smallest capacity among capped arcs, bounded by the outstanding demand.
func bottleneck(cp *core.Graph, pathLinks []int, remaining int64) (int64, error) {
	push := remaining
	for _, id := range pathLinks {
		l, err := cp.Link(id)
		if err != nil {
			return 0, err
		}
		if c, ok := l.Capacity(); ok && c < push {
			push = c
		}
	}

	return push, nil
}

// applyPush moves push units along the path, maintaining the residual
// network in place: forward traversal shrinks the arc and grows a reverse
// arc of negated cost; traversing a reverse arc cancels flow and restores
// the forward arc.
func applyPush(cp *core.Graph, pathLinks []int, push int64, fwd, rev map[int]int, flow map[int]int64) error {
	for _, id := range pathLinks {
		l, err := cp.Link(id)
		if err != nil {
			return err
		}
		key := l.MatchID()

		if rev[key] == id {
			// cancellation
			flow[key] -= push
			if fid := fwd[key]; fid != 0 && cp.HasLink(fid) {
				fl, err := cp.Link(fid)
				if err != nil {
					return err
				}
				if c, ok := fl.Capacity(); ok {
					fl.SetCapacity(c + push)
				}
			} else {
				nf, err := cp.AddLink(l.Head(), l.Tail(), -l.Cost(),
					core.WithLinkDirected(true), core.WithCapacity(push), core.WithMatchID(key))
				if err != nil {
					return err
				}
				fwd[key] = nf.ID()
			}
			if err := shrink(cp, l, push, rev, key); err != nil {
				return err
			}
			continue
		}

		// forward push
		flow[key] += push
		if aid := rev[key]; aid != 0 && cp.HasLink(aid) {
			al, err := cp.Link(aid)
			if err != nil {
				return err
			}
			if c, ok := al.Capacity(); ok {
				al.SetCapacity(c + push)
			}
		} else {
			na, err := cp.AddLink(l.Head(), l.Tail(), -l.Cost(),
				core.WithLinkDirected(true), core.WithCapacity(push), core.WithMatchID(key))
			if err != nil {
				return err
			}
			rev[key] = na.ID()
		}
		if err := shrink(cp, l, push, fwd, key); err != nil {
			return err
		}
	}

	return nil
}

// shrink reduces l's residual capacity by push, removing it when exhausted.
func shrink(cp *core.Graph, l *core.Link, push int64, reg map[int]int, key int) error {
	c, ok := l.Capacity()
	if !ok {
		return nil
	}
	if c > push {
		l.SetCapacity(c - push)

		return nil
	}
	reg[key] = 0

	return cp.RemoveLink(l.ID())
}
