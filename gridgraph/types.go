// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
	"math"

	"github.com/katalvlaran/crucible/motion"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a tile with a negative entry cost.
	ErrNegativeCost = errors.New("gridgraph: tile cost must be non-negative")
	// ErrBadWallThreshold indicates a wall threshold of zero or less.
	ErrBadWallThreshold = errors.New("gridgraph: wall threshold must be positive")
	// ErrBadDigit indicates a non-digit character in digit-grid input.
	ErrBadDigit = errors.New("gridgraph: tile is not a decimal digit")
)

// Move is a legal transition out of a state: the state reached and the
// cost of entering its cell.
type Move struct {
	State motion.State
	Cost  int
}

// GridOptions contains tunable parameters for a WeightedGrid.
type GridOptions struct {
	// WallThreshold marks tiles with cost ≥ WallThreshold as impassable.
	WallThreshold int
}

// Option configures GridOptions.
type Option func(*GridOptions)

// WithWallThreshold treats every tile whose cost is ≥ t as a wall.
// Must pass a positive value; zero or negative is rejected by NewWeightedGrid.
func WithWallThreshold(t int) Option {
	return func(o *GridOptions) {
		o.WallThreshold = t
	}
}

// DefaultGridOptions returns GridOptions with no walls (WallThreshold=math.MaxInt).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: math.MaxInt,
	}
}

// WeightedGrid is a rectangular matrix of tile entry costs. It is immutable
// once built: every field is private and costs holds a copy of the input,
// so concurrent searches may share one grid.
type WeightedGrid struct {
	rows, cols    int
	costs         [][]int
	wallThreshold int
}
