package motion

import (
	"errors"
	"fmt"
)

// MaxRunLimit bounds MaxStraightLine. It keeps the worst-case state count
// (rows × cols × 4 × max × min) within a sane memory budget.
const MaxRunLimit = 1 << 16

// Sentinel errors returned by constraint validation.
var (
	// ErrBadMaxStraightLine indicates MaxStraightLine < 1.
	ErrBadMaxStraightLine = errors.New("motion: MaxStraightLine must be at least 1")

	// ErrBadMinStraightLine indicates MinStraightLine < 0.
	ErrBadMinStraightLine = errors.New("motion: MinStraightLine must be non-negative")

	// ErrMinExceedsMax indicates MinStraightLine > MaxStraightLine.
	ErrMinExceedsMax = errors.New("motion: MinStraightLine exceeds MaxStraightLine")

	// ErrRunTooLong indicates MaxStraightLine > MaxRunLimit.
	ErrRunTooLong = errors.New("motion: MaxStraightLine exceeds MaxRunLimit")
)

// Constraints bound the length of straight runs.
//
// MaxStraightLine – cells a mover may travel in one facing before a turn is mandatory (≥ 1).
// MinStraightLine – cells a mover must travel in one facing before it may turn or stop (≥ 0).
type Constraints struct {
	MaxStraightLine int
	MinStraightLine int
}

var (
	// Loose allows at most three cells in a row and no minimum run.
	Loose = Constraints{MaxStraightLine: 3, MinStraightLine: 0}

	// Clumsy requires at least four and allows at most ten cells in a row.
	Clumsy = Constraints{MaxStraightLine: 10, MinStraightLine: 4}
)

// NewConstraints builds and validates a Constraints value.
func NewConstraints(maxStraight, minStraight int) (Constraints, error) {
	c := Constraints{MaxStraightLine: maxStraight, MinStraightLine: minStraight}
	if err := c.Validate(); err != nil {
		return Constraints{}, err
	}

	return c, nil
}

// Validate reports the first violated invariant of c, or nil.
func (c Constraints) Validate() error {
	if c.MaxStraightLine < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMaxStraightLine, c.MaxStraightLine)
	}
	if c.MinStraightLine < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMinStraightLine, c.MinStraightLine)
	}
	if c.MinStraightLine > c.MaxStraightLine {
		return fmt.Errorf("%w: min=%d max=%d", ErrMinExceedsMax, c.MinStraightLine, c.MaxStraightLine)
	}
	if c.MaxStraightLine > MaxRunLimit {
		return fmt.Errorf("%w: got %d", ErrRunTooLong, c.MaxStraightLine)
	}

	return nil
}

// StartBudget returns the counters of a mover that has not moved yet:
// a full straight-run allowance and the whole minimum run still owed.
func (c Constraints) StartBudget() (mustTurnIn, canTurnIn Countdown) {
	return Countdown(c.MaxStraightLine), Countdown(c.MinStraightLine)
}

// TurnBudget returns the counters of a mover that has just turned and
// entered the first cell of its new facing.
func (c Constraints) TurnBudget() (mustTurnIn, canTurnIn Countdown) {
	minRun := c.MinStraightLine
	if minRun > c.MaxStraightLine+1 {
		minRun = c.MaxStraightLine + 1
	}

	return Countdown(c.MaxStraightLine).Tick(), Countdown(minRun).Tick()
}

// StateBound estimates how many distinct states a search over a rows×cols
// grid can discover. It is only a capacity hint.
func (c Constraints) StateBound(rows, cols int) int {
	minRun := c.MinStraightLine
	if minRun < 1 {
		minRun = 1
	}

	return rows * cols * len(Directions) * c.MaxStraightLine * minRun
}

// String implements fmt.Stringer.
func (c Constraints) String() string {
	return fmt.Sprintf("max=%d min=%d", c.MaxStraightLine, c.MinStraightLine)
}
