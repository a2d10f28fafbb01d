package gridgraph

import "github.com/katalvlaran/crucible/motion"

// Neighbors returns every state reachable from s in one legal step under c,
// paired with the cost of entering the new cell.
//
// Behavior:
//  1. If s.CanTurnIn == 0 the two perpendicular facings are tried, each
//     landing with the turn budget of c.
//  2. If s.MustTurnIn > 0 one more step in s.Facing is tried, ticking both counters.
//  3. Cells outside the grid (or walls) are silently dropped.
//
// Reversal is structurally impossible: only "straight" and "perpendicular"
// candidates are ever generated.
//
// The result is ordered straight first, then the turns in Direction.Turns order.
// Complexity: O(1), at most three moves.
func (g *WeightedGrid) Neighbors(s motion.State, c motion.Constraints) []Move {
	return g.AppendNeighbors(make([]Move, 0, 3), s, c)
}

// AppendNeighbors appends the moves of Neighbors to dst and returns the
// extended slice. Callers reusing dst across calls avoid one allocation per state.
func (g *WeightedGrid) AppendNeighbors(dst []Move, s motion.State, c motion.Constraints) []Move {
	if s.CanContinue() {
		if at, ok := g.Step(s.Row, s.Col, s.Facing); ok {
			dst = append(dst, Move{State: s.Straight(at), Cost: g.costs[at.Row][at.Col]})
		}
	}

	if s.CanTurn() {
		for _, facing := range s.Facing.Turns() {
			if at, ok := g.Step(s.Row, s.Col, facing); ok {
				dst = append(dst, Move{State: motion.TurnedInto(facing, at, c), Cost: g.costs[at.Row][at.Col]})
			}
		}
	}

	return dst
}
