package motion

// Direction is the facing of a mover on the grid.
type Direction uint8

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Down moves towards the last row.
	Down
	// Left moves towards column 0.
	Left
	// Right moves towards the last column.
	Right
)

// Directions lists every facing in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the row and column offsets of one step in d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Turns returns the two facings perpendicular to d.
// Neither the same facing nor its reverse is ever part of the result.
func (d Direction) Turns() [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}

	return [2]Direction{Up, Down}
}

// Reverse returns the facing rotated by 180°.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Direction(?)"
	}
}
