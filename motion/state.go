package motion

import "fmt"

// Countdown is a non-negative run-length counter. Ticking an expired
// Countdown leaves it at zero.
type Countdown int

// Tick returns the counter decremented by one, saturating at zero.
func (c Countdown) Tick() Countdown {
	if c <= 0 {
		return 0
	}

	return c - 1
}

// Expired reports whether the counter reached zero.
func (c Countdown) Expired() bool { return c <= 0 }

// Cell is a grid position.
type Cell struct {
	Row, Col int
}

// String implements fmt.Stringer.
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// State is a node of the augmented search graph. Two states are the same
// node only if every field matches, so a cell may be revisited under a
// different facing or run-length budget.
type State struct {
	Row, Col   int
	Facing     Direction
	MustTurnIn Countdown // straight cells still allowed before a turn is forced
	CanTurnIn  Countdown // straight cells still owed before a turn or stop is legal
}

// Cell returns the position of s.
func (s State) Cell() Cell { return Cell{Row: s.Row, Col: s.Col} }

// CanTurn reports whether the minimum straight run has been satisfied.
func (s State) CanTurn() bool { return s.CanTurnIn.Expired() }

// CanStop reports whether the mover may end its journey in s.
// Stopping is legal exactly when turning is.
func (s State) CanStop() bool { return s.CanTurn() }

// CanContinue reports whether s may take one more step in its current facing.
func (s State) CanContinue() bool { return !s.MustTurnIn.Expired() }

// Straight returns the state reached by one step in the current facing
// to cell at. Only the counters are derived; the caller supplies the cell.
func (s State) Straight(at Cell) State {
	return State{
		Row:        at.Row,
		Col:        at.Col,
		Facing:     s.Facing,
		MustTurnIn: s.MustTurnIn.Tick(),
		CanTurnIn:  s.CanTurnIn.Tick(),
	}
}

// TurnedInto returns the state reached by turning to facing and stepping
// into at. The counters restart from the turn budget of c, so the state
// turned from does not matter.
func TurnedInto(facing Direction, at Cell, c Constraints) State {
	must, can := c.TurnBudget()

	return State{
		Row:        at.Row,
		Col:        at.Col,
		Facing:     facing,
		MustTurnIn: must,
		CanTurnIn:  can,
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("(%d,%d) %s must=%d can=%d", s.Row, s.Col, s.Facing, s.MustTurnIn, s.CanTurnIn)
}

// StartStates returns one seed state per facing at src, each carrying the
// start budget of c.
func StartStates(src Cell, c Constraints) [4]State {
	must, can := c.StartBudget()
	var seeds [4]State
	for i, d := range Directions {
		seeds[i] = State{Row: src.Row, Col: src.Col, Facing: d, MustTurnIn: must, CanTurnIn: can}
	}

	return seeds
}
