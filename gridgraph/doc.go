// Package gridgraph treats a rectangular 2D grid of entry costs as the
// implicit graph of a constrained mover.
//
// What:
//
//   - WeightedGrid wraps a rectangular [][]int of non-negative tile costs.
//   - Neighbors enumerates, for a motion.State and motion.Constraints, every
//     legal next state together with the cost of entering its cell.
//   - ParseDigits reads the "one decimal digit per tile" text format.
//
// Why:
//
//   - Heat-loss style routing: a vehicle that cannot reverse, must commit to a
//     straight run before turning, and overheats on long straights.
//   - Any Dijkstra-style search whose graph is too large to materialise, since
//     edges are generated on demand from the current state.
//
// Transitions:
//
//   - CanTurnIn == 0  → the two perpendicular facings are tried.
//   - MustTurnIn > 0  → one more step in the current facing is tried.
//   - Both branches may fire; out-of-bounds (and wall) cells are dropped.
//   - Reversal is never generated.
//
// Complexity:
//
//   - NewWeightedGrid: O(W×H) time and memory (deep copy).
//   - Neighbors:       O(1), at most three moves.
//
// Options:
//
//   - WithWallThreshold(t): tiles with cost ≥ t are impassable.
//
// Errors:
//
//   - ErrEmptyGrid:        input grid has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrNegativeCost:     a tile cost is below zero.
//   - ErrBadWallThreshold: wall threshold is not positive.
//   - ErrBadDigit:         parser met a character that is not a decimal digit.
package gridgraph
