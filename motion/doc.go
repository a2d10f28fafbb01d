// Package motion describes how a mover travels across a grid: which way it
// faces, how long it may (or must) keep going straight, and the value-typed
// search state that combines both with a position.
//
// What:
//
//   - Direction: one of Up, Down, Left, Right. A mover never reverses.
//   - Constraints: {MaxStraightLine, MinStraightLine}, validated once at construction.
//   - Countdown: a run-length counter with saturating decrement.
//   - State: (row, col, facing, must-turn-in, can-turn-in), comparable and usable as a map key.
//
// Run-length counters:
//
//   - MustTurnIn counts the cells the mover may still travel straight before a
//     turn becomes mandatory. It is reset to MaxStraightLine-1 right after a turn.
//   - CanTurnIn counts the cells the mover must still travel straight before a
//     turn (or a stop) becomes legal. It is reset to MinStraightLine-1 (saturating
//     at zero) right after a turn.
//
// Presets:
//
//   - Loose:  MaxStraightLine=3,  MinStraightLine=0.
//   - Clumsy: MaxStraightLine=10, MinStraightLine=4.
//
// Errors:
//
//   - ErrBadMaxStraightLine: MaxStraightLine < 1.
//   - ErrBadMinStraightLine: MinStraightLine < 0.
//   - ErrMinExceedsMax:      MinStraightLine > MaxStraightLine.
//   - ErrRunTooLong:         MaxStraightLine > MaxRunLimit.
package motion
