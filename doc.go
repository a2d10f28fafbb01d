// Package crucible finds the cheapest route for a mover that cannot steer
// freely: across a grid of per-tile entry costs, it may never reverse, must
// keep going straight for a minimum number of cells before turning or
// stopping, and may never go straight for more than a maximum number.
//
// 🚀 What is inside?
//
//		• motion/     — facings, straight-run Constraints, Countdown counters and the search State
//		• gridgraph/  — the immutable WeightedGrid, its legal-move enumeration and a digit-grid parser
//		• dijkstra/   — min-cost-first search over (cell, facing, run budget) states
//		• cmd/crucible — command-line front end for digit-grid puzzles
//
// ✨ Highlights
//
//   - Edges are generated on demand, so the augmented graph is never materialised.
//   - Unreachable targets come back as dijkstra.ErrUnreachable, not a panic.
//   - Pure values and per-call state: searches on a shared grid may run concurrently.
//
// Quick ASCII example (Loose profile, max 3 straight):
//
//	S>>>v
//	    v
//	    G
//
// Only the minimal cost is computed; paths are not reconstructed.
//
//	go get github.com/katalvlaran/crucible
package crucible
