package board

import "fmt"

// DefaultSize is the default number of cells on a side of the board.
const DefaultSize = 7

// Board holds the mutable state of a Galaxies puzzle: grid dimensions, the
// set of boundary edges, the ordered list of galaxy centers, and the sparse
// map of cell marks.
//
// Boundary and center membership are hash lookups keyed by Place. The four
// periphery edges of the board are always boundaries; that property is
// derived from position and never depends on the stored set.
//
// A Board is not safe for concurrent mutation; callers serialize access.
type Board struct {
	cols int
	rows int

	boundaries map[Place]bool
	centers    []Place // insertion order, no duplicates
	centerSet  map[Place]bool
	marks      map[Place]int // absent means mark 0
}

// New creates an empty DefaultSize x DefaultSize board with a boundary
// around the periphery.
func New() *Board {
	return NewSize(DefaultSize, DefaultSize)
}

// NewSize creates an empty cols x rows board with a boundary around the
// periphery.
func NewSize(cols, rows int) *Board {
	b := &Board{}
	b.init(cols, rows)
	return b
}

// init resets the board to an empty cols x rows grid. Periphery edges are
// not stored; IsBoundary derives them from position.
func (b *Board) init(cols, rows int) {
	b.cols = cols
	b.rows = rows
	b.boundaries = make(map[Place]bool)
	b.centers = nil
	b.centerSet = make(map[Place]bool)
	b.marks = make(map[Place]int)
}

// Clear removes all centers, marks, and boundaries not on the periphery,
// without resizing.
func (b *Board) Clear() {
	b.init(b.cols, b.rows)
}

// Resize sets the board size to cols x rows and clears it.
func (b *Board) Resize(cols, rows int) {
	b.init(cols, rows)
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := NewSize(b.cols, b.rows)
	for p := range b.boundaries {
		c.boundaries[p] = true
	}
	c.centers = append([]Place(nil), b.centers...)
	for p := range b.centerSet {
		c.centerSet[p] = true
	}
	for p, v := range b.marks {
		c.marks[p] = v
	}
	return c
}

// Cols returns the number of columns of cells in the board.
func (b *Board) Cols() int { return b.cols }

// Rows returns the number of rows of cells in the board.
func (b *Board) Rows() int { return b.rows }

// XLim returns the number of coordinate columns: 2*cols + 1.
func (b *Board) XLim() int { return 2*b.cols + 1 }

// YLim returns the number of coordinate rows: 2*rows + 1.
func (b *Board) YLim() int { return 2*b.rows + 1 }

// IsBoundary returns true iff (x, y) carries a boundary: either the edge is
// in the stored boundary set, or it is an edge on the outer frame of the
// board. The frame test is a symmetric OR of all four sides; the bottom row
// is treated exactly like the other three.
func (b *Board) IsBoundary(x, y int) bool {
	if b.boundaries[At(x, y)] {
		return true
	}
	return b.IsEdge(x, y) && b.onFrame(x, y)
}

// ToggleBoundary flips the presence of a boundary at the edge (x, y), i.e.
// negates IsBoundary(x, y). Periphery edges cannot be toggled off: removing
// the stored entry leaves the positional boundary in force. Returns
// ErrNotEdge if (x, y) is not an edge.
func (b *Board) ToggleBoundary(x, y int) error {
	if !b.IsEdge(x, y) {
		return fmt.Errorf("%w: %v", ErrNotEdge, At(x, y))
	}
	p := At(x, y)
	if b.IsBoundary(x, y) {
		delete(b.boundaries, p)
	} else {
		b.boundaries[p] = true
	}
	return nil
}

// IsCenter returns true iff (x, y) is a declared galaxy center.
func (b *Board) IsCenter(x, y int) bool {
	return b.centerSet[At(x, y)]
}

// isCenterAt is the Place form of IsCenter, for internal hot paths.
func (b *Board) isCenterAt(p Place) bool {
	return b.centerSet[p]
}

// PlaceCenter declares a galaxy center at p. Inserting an existing center
// is a no-op. Centers must lie within the grid and off the outer frame;
// violating either returns ErrOutOfBounds.
func (b *Board) PlaceCenter(p Place) error {
	if !b.inBounds(p.X, p.Y) || b.onFrame(p.X, p.Y) {
		return fmt.Errorf("%w: center %v", ErrOutOfBounds, p)
	}
	if b.centerSet[p] {
		return nil
	}
	b.centerSet[p] = true
	b.centers = append(b.centers, p)
	return nil
}

// Centers returns a copy of the center list in insertion order.
func (b *Board) Centers() []Place {
	return append([]Place(nil), b.centers...)
}

// Mark returns the current mark on cell (x, y), or -1 if (x, y) is not a
// valid cell address. The -1 sentinel is distinct from a stored mark, which
// is always nonnegative.
func (b *Board) Mark(x, y int) int {
	if !b.IsCell(x, y) {
		return -1
	}
	return b.marks[At(x, y)]
}

// SetMark sets the mark on cell (x, y) to v. Returns ErrNotCell if (x, y)
// is not a valid cell and ErrBadMark if v is negative; the board is
// unchanged on error.
func (b *Board) SetMark(x, y, v int) error {
	if !b.IsCell(x, y) {
		return fmt.Errorf("%w: %v", ErrNotCell, At(x, y))
	}
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrBadMark, v)
	}
	b.marks[At(x, y)] = v
	return nil
}

// MarkAll sets the marks of all given cells to v. Requires v >= 0 and that
// every element is a valid cell; the first violation aborts the sweep.
func (b *Board) MarkAll(cells []Place, v int) error {
	for _, c := range cells {
		if err := b.SetMark(c.X, c.Y, v); err != nil {
			return err
		}
	}
	return nil
}

// MarkEvery sets the mark of every cell present in the mark map to v. Cells
// never marked stay implicit (mark 0); the sweep does not materialize the
// whole board. Requires v >= 0.
func (b *Board) MarkEvery(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrBadMark, v)
	}
	for p := range b.marks {
		b.marks[p] = v
	}
	return nil
}
