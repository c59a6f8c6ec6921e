package euler

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for Eulerian analysis.
var (
	// ErrNotEulerian indicates the graph's degree structure rules out a
	// closed tour covering every link exactly once.
	ErrNotEulerian = errors.New("euler: graph is not eulerian")

	// ErrNotConnected indicates the graph's links span more than one
	// connected component, or the start vertex is detached from them.
	ErrNotConnected = errors.New("euler: links are not connected")

	// ErrNotStronglyConnected indicates arc orientation separates the
	// link-covered vertices into multiple strongly connected components.
	ErrNotStronglyConnected = errors.New("euler: links are not strongly connected")
)

// Options tunes a Tour invocation.
type Options struct {
	// Start is the tour's start/end vertex. Zero means the graph's depot,
	// falling back to vertex 1.
	Start int

	// Logger receives per-stage debug events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Option mutates Options.
type Option func(*Options)

// WithStart anchors the tour at the given vertex.
// Panics if v is not positive.
func WithStart(v int) Option {
	if v < 1 {
		panic("euler: WithStart requires a positive vertex id")
	}

	return func(o *Options) { o.Start = v }
}

// WithLogger directs debug events to the given logger.
// Panics if logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("euler: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = logger }
}
