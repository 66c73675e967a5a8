// Package board implements the state of a Galaxies puzzle.
//
// Every cell, cell edge, and edge intersection on the board has integer
// coordinates (x, y). For cells both x and y are odd; for intersections both
// are even; for horizontal edges x is odd and y is even; for vertical edges
// x is even and y is odd. On a board with c columns and r rows of cells,
// (0, 0) is the bottom-left corner and (2c, 2r) the top-right corner. If
// (x, y) is a cell, its edges are (x-1, y), (x+1, y), (x, y-1) and (x, y+1),
// and the four cells (x, y), (x+2, y), (x, y+2), (x+2, y+2) meet at the
// intersection (x+1, y+1).
//
// Cells carry nonnegative integer marks; a cell with mark 0 is unmarked.
// The package is UI-agnostic and deterministic, with no external
// dependencies, so the engine stays pure and testable.
package board

import "fmt"

// Place is an immutable 2D coordinate on the puzzle grid.
// It is a plain value: compare with ==, copy freely.
type Place struct {
	X int
	Y int
}

// At is a convenience constructor for Place.
func At(x, y int) Place {
	return Place{X: x, Y: y}
}

// Move returns a new Place offset by (dx, dy).
func (p Place) Move(dx, dy int) Place {
	return Place{X: p.X + dx, Y: p.Y + dy}
}

// String returns a string representation of the place.
func (p Place) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
