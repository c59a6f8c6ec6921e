package mincostflow

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for flow computations.
var (
	// ErrUndirectedLink indicates the graph contains a link without an
	// orientation; flow is defined on arcs only.
	ErrUndirectedLink = errors.New("mincostflow: graph has undirected links")

	// ErrInfeasible indicates the declared demands cannot be satisfied:
	// they do not sum to zero, or capacity/reachability falls short.
	ErrInfeasible = errors.New("mincostflow: demands cannot be satisfied")
)

// Options tunes a Solve invocation.
type Options struct {
	// Logger receives per-iteration debug events. Defaults to a no-op logger.
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
		panic("mincostflow: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = logger }
}
