// Package dijkstra defines core types and configuration options
// for the constrained shortest-path search over a weighted grid.
//
// The search runs Dijkstra's algorithm over augmented states
// (row, col, facing, must-turn-in, can-turn-in) rather than plain cells, so
// the same cell may be settled several times under different run budgets.
//
// Complexity:
//
//	– Time:  O(S log S)   where S = number of distinct states discovered
//	   • Each state is expanded at most once (closed set).
//	   • Each expansion pushes at most three successors.
//	– Space: O(S)
//	   • S ≤ rows × cols × 4 × max × max(min, 1).
//
// Options:
//
//	– Source:          starting cell (default (0,0)).
//	– Target:          goal cell (default bottom-right corner).
//	– WithConstraints: straight-run bounds (default motion.Loose).
//	– WithMaxDistance: optional cap on the cost explored.
//	– WithContext:     optional cancellation, checked between expansions.
//
// Errors (sentinel):
//
//	– ErrNilGrid            if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds  if Source lies outside the grid.
//	– ErrTargetOutOfBounds  if Target lies outside the grid.
//	– ErrUnreachable        if no legal stop exists at Target (within MaxDistance).
//	– ErrBadMaxDistance     if MaxDistance < 0.
//
// Example usage:
//
//	cost, err := ShortestPath(g, WithConstraints(motion.Clumsy))
//	if errors.Is(err, ErrUnreachable) {
//	    // no legal route
//	}
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/crucible/motion"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.WeightedGrid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source cell is not on the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrTargetOutOfBounds indicates that the target cell is not on the grid.
	ErrTargetOutOfBounds = errors.New("dijkstra: target cell out of bounds")

	// ErrUnreachable indicates that no legal sequence of moves ends with a
	// legal stop on the target cell.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the search.
//
// Source      – starting cell; its own cost is never paid.
// Target      – goal cell; a nil pointer means the grid's bottom-right corner.
// Constraints – straight-run bounds of the mover.
// MaxDistance – stop once the cheapest frontier entry exceeds this cost.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Ctx         – checked between expansions; nil means context.Background().
type Options struct {
	Source      motion.Cell
	Target      *motion.Cell
	Constraints motion.Constraints
	MaxDistance int64
	Ctx         context.Context
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// Source sets the starting cell.
func Source(c motion.Cell) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// Target sets the goal cell.
func Target(c motion.Cell) Option {
	return func(o *Options) {
		o.Target = &c
	}
}

// WithConstraints sets the straight-run bounds. They are validated by the
// search before any work begins.
func WithConstraints(c motion.Constraints) Option {
	return func(o *Options) {
		o.Constraints = c
	}
}

// WithMaxDistance sets a maximum cost threshold.
// States whose accumulated cost would exceed this value are not explored.
// Must pass a non-negative value; Search rejects a negative one with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithContext lets a host abort a long search. The search itself never
// blocks; ctx is polled between state expansions.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:      (0,0).
//   - Target:      nil (bottom-right corner of the grid).
//   - Constraints: motion.Loose.
//   - MaxDistance: math.MaxInt64 (no cap).
//   - Ctx:         context.Background().
func DefaultOptions() Options {
	return Options{
		Source:      motion.Cell{},
		Constraints: motion.Loose,
		MaxDistance: math.MaxInt64,
		Ctx:         context.Background(),
	}
}

// Result describes a finished search.
//
// Cost     – minimal accumulated entry cost.
// Goal     – the state popped on the target cell.
// Expanded – states settled (closed) before the goal was popped.
// Pushed   – frontier insertions, seeds included.
// Stale    – pops skipped because the state was already closed.
type Result struct {
	Cost     int64
	Goal     motion.State
	Expanded int
	Pushed   int
	Stale    int
}
