package shortest

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Inf is the distance reported for vertices a label-setting algorithm
// cannot reach. Label-correcting algorithms use a graph-dependent sentinel
// instead; compare against Result.Unreached, not Inf, to stay portable
// across algorithms.
const Inf = int64(9223372036854775807)

// Sentinel errors for shortest-path computations.
var (
	// ErrNegativeCycle indicates all-pairs computation met a cycle of
	// negative total cost. Single-source label correctors return the richer
	// *NegativeCycleError instead.
	ErrNegativeCycle = errors.New("shortest: negative cycle")

	// ErrDimension indicates a caller-allocated matrix has the wrong shape.
	ErrDimension = errors.New("shortest: matrix dimension mismatch")

	// ErrNoPath indicates no path exists between the requested endpoints.
	ErrNoPath = errors.New("shortest: no path between endpoints")
)

// NegativeCycleError reports a concrete cycle of negative total cost found
// during a label-correcting scan. Vertices lists the cycle in traversal
// order starting and ending at Start; Links[i] is the id of the link
// traversed from Vertices[i] to Vertices[i+1].
type NegativeCycleError struct {
	Start    int
	Vertices []int
	Links    []int
}

func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("shortest: negative cycle through vertex %d (%d links)", e.Start, len(e.Links))
}

// Is makes errors.Is(err, ErrNegativeCycle) match a *NegativeCycleError.
func (e *NegativeCycleError) Is(target error) bool { return target == ErrNegativeCycle }

// Result holds a single-source shortest-path tree. All slices are
// 1-indexed by vertex id with slot 0 unused.
type Result struct {
	// Dist[v] is the cheapest known cost from the source to v, or
	// Unreached when no path exists.
	Dist []int64

	// Prev[v] is the predecessor vertex on the cheapest path (0 for the
	// source and for unreached vertices).
	Prev []int

	// Links[v] is the id, in the queried graph, of the link traversed from
	// Prev[v] to v (0 for the source and for unreached vertices).
	Links []int

	// Unreached is the sentinel stored in Dist for unreachable vertices.
	Unreached int64
}

// Reached reports whether the source reaches v.
func (r *Result) Reached(v int) bool {
	return v >= 1 && v < len(r.Dist) && r.Dist[v] < r.Unreached
}

// PathTo reconstructs the cheapest path from the source to v, returning the
// vertex sequence (source first) and the ids of the links traversed between
// consecutive vertices. It returns ErrNoPath when v is unreached.
func (r *Result) PathTo(v int) ([]int, []int, error) {
	if !r.Reached(v) {
		return nil, nil, fmt.Errorf("%w: vertex %d unreached", ErrNoPath, v)
	}
	var verts, links []int
	for cur := v; ; cur = r.Prev[cur] {
		verts = append(verts, cur)
		if r.Prev[cur] == 0 {
			break
		}
		links = append(links, r.Links[cur])
	}
	reverse(verts)
	reverse(links)

	return verts, links, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Options tunes a shortest-path invocation.
type Options struct {
	// Logger receives per-stage debug events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Option mutates Options.
type Option func(*Options)

// WithLogger directs debug events to the given logger.
// Panics if logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("shortest: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = logger }
}
