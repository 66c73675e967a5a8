package board

import "errors"

// Sentinel errors for precondition violations. These are programming errors
// surfaced immediately to the caller; negative results such as "no galaxy"
// or the -1 mark sentinel are not errors.
var (
	// ErrNotEdge is returned when a boundary operation targets a
	// coordinate that is not an edge.
	ErrNotEdge = errors.New("board: not an edge coordinate")

	// ErrNotCell is returned when a mark operation targets a coordinate
	// that is not a cell.
	ErrNotCell = errors.New("board: not a cell coordinate")

	// ErrBadMark is returned when a mark value is negative.
	ErrBadMark = errors.New("board: mark value must be nonnegative")

	// ErrOutOfBounds is returned when a center is placed outside the grid
	// or on its outer frame.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
)
