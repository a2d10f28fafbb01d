// Package dijkstra provides a minimum-cost search for a mover on a weighted
// grid whose straight runs are bounded from below and above.
//
// Overview:
//
//   - The mover starts on Source facing any of the four directions, never
//     reverses, must travel at least MinStraightLine cells before turning or
//     stopping, and may travel at most MaxStraightLine cells in one facing.
//   - Every entered tile adds its cost; the Source tile itself is free.
//   - The search runs Dijkstra's algorithm over the augmented state space
//     (row, col, facing, must-turn-in, can-turn-in) with a min-heap frontier
//     and a closed set keyed on the full state.
//
// When to use:
//
//   - Routing vehicles with turning limits (crucibles, trains, conveyor carts).
//   - Any grid search where "how you arrived" constrains "where you may go next".
//
// Key features:
//
//   - Functional options (Source, Target, WithConstraints, WithMaxDistance, WithContext).
//   - Unreachable targets are reported with ErrUnreachable, never by panicking
//     and never by looping forever.
//   - Search returns exploration statistics alongside the cost.
//   - No state survives a call: concurrent searches on one grid are safe
//     because the grid is never mutated.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = distinct states discovered.
//   - Space: O(S), S ≤ rows × cols × 4 × max × max(min, 1).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrSourceOutOfBounds, ErrTargetOutOfBounds: invalid input,
//     rejected before any search work.
//   - motion.ErrBadMaxStraightLine, motion.ErrBadMinStraightLine,
//     motion.ErrMinExceedsMax, motion.ErrRunTooLong: invalid constraints.
//   - ErrUnreachable: no legal stop on Target.
//   - ErrBadMaxDistance: negative WithMaxDistance, rejected before any search work.
//
// API reference:
//
//	func ShortestPath(g *gridgraph.WeightedGrid, opts ...Option) (int64, error)
//	func Search(g *gridgraph.WeightedGrid, opts ...Option) (Result, error)
//
// Path reconstruction is deliberately absent: only the minimal cost is computed.
package dijkstra
