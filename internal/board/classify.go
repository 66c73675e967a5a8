package board

// Kind classifies a coordinate on the puzzle grid.
type Kind uint8

const (
	KindInvalid Kind = iota // out of bounds
	KindCell
	KindVertEdge
	KindHorizEdge
	KindIntersection
)

// String returns the string representation of a coordinate kind.
func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindVertEdge:
		return "vertical edge"
	case KindHorizEdge:
		return "horizontal edge"
	case KindIntersection:
		return "intersection"
	default:
		return "invalid"
	}
}

// Classify maps (x, y) to exactly one coordinate kind, or KindInvalid when
// the coordinate lies outside the grid. All parity decisions in the package
// route through the predicates below; none reimplements the arithmetic.
func (b *Board) Classify(x, y int) Kind {
	switch {
	case !b.inBounds(x, y):
		return KindInvalid
	case x%2 == 1 && y%2 == 1:
		return KindCell
	case x%2 == 0 && y%2 == 0:
		return KindIntersection
	case x%2 == 0:
		return KindVertEdge
	default:
		return KindHorizEdge
	}
}

// inBounds reports whether (x, y) lies on the coordinate grid.
func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.XLim() && y >= 0 && y < b.YLim()
}

// onFrame reports whether (x, y) lies on the outer frame of the board.
func (b *Board) onFrame(x, y int) bool {
	return x == 0 || y == 0 || x == b.XLim()-1 || y == b.YLim()-1
}

// IsCell returns true iff (x, y) is a valid cell.
func (b *Board) IsCell(x, y int) bool {
	return b.Classify(x, y) == KindCell
}

// IsEdge returns true iff (x, y) is a valid edge, vertical or horizontal.
func (b *Board) IsEdge(x, y int) bool {
	k := b.Classify(x, y)
	return k == KindVertEdge || k == KindHorizEdge
}

// IsVert returns true iff (x, y) is a vertical edge.
func (b *Board) IsVert(x, y int) bool {
	return b.Classify(x, y) == KindVertEdge
}

// IsHoriz returns true iff (x, y) is a horizontal edge.
func (b *Board) IsHoriz(x, y int) bool {
	return b.Classify(x, y) == KindHorizEdge
}

// IsIntersection returns true iff (x, y) is a valid intersection.
func (b *Board) IsIntersection(x, y int) bool {
	return b.Classify(x, y) == KindIntersection
}
