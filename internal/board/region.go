package board

import "fmt"

// Region is a set of cell places, the transient result of a region search.
type Region map[Place]bool

// Cells returns the region's members as a slice, in arbitrary order.
func (r Region) Cells() []Place {
	cells := make([]Place, 0, len(r))
	for p := range r {
		cells = append(cells, p)
	}
	return cells
}

// axisDeltas are the four unit offsets from a cell to its edges; doubling
// them reaches the neighboring cell across that edge.
var axisDeltas = [4][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// diagDeltas are the four unit offsets from a cell to its corner
// intersections.
var diagDeltas = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// accrete adds to region every cell reachable from seed using horizontal
// and vertical moves that do not cross a boundary, stopping at cells
// already in region. Uses an explicit worklist, so region size never limits
// stack depth; each cell is enqueued at most once. Requires that seed is a
// valid cell.
func (b *Board) accrete(seed Place, region Region) {
	if region[seed] {
		return
	}
	region[seed] = true
	stack := []Place{seed}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range axisDeltas {
			if b.IsBoundary(cell.X+d[0], cell.Y+d[1]) {
				continue
			}
			next := cell.Move(2*d[0], 2*d[1])
			if !region[next] {
				region[next] = true
				stack = append(stack, next)
			}
		}
	}
}

// Opposing returns the cell opposite p with center as the point of
// reflection, i.e. 2*center - p. The second result is false when p is not a
// cell or when the reflection is out of bounds, not a cell, or on the
// periphery; callers treat that as "symmetry fails here".
func (b *Board) Opposing(center, p Place) (Place, bool) {
	opp := At(2*center.X-p.X, 2*center.Y-p.Y)
	if !b.IsCell(p.X, p.Y) || !b.IsCell(opp.X, opp.Y) || b.onFrame(opp.X, opp.Y) {
		return Place{}, false
	}
	return opp, true
}

// isGalaxy reports whether region is a correctly formed galaxy around
// center: symmetric about center, free of interior boundaries, and free of
// other centers on its cells, adjoining edges, and corner intersections.
// Assumes region is connected.
func (b *Board) isGalaxy(center Place, region Region) bool {
	if len(region) == 0 {
		return false
	}
	for cell := range region {
		if b.isCenterAt(cell) && cell != center {
			return false
		}
		opp, ok := b.Opposing(center, cell)
		if !ok || !region[opp] {
			return false
		}
		for _, d := range axisDeltas {
			edge := cell.Move(d[0], d[1])
			next := cell.Move(2*d[0], 2*d[1])
			// A boundary must separate the region from its
			// complement, never cut through it.
			if b.IsBoundary(edge.X, edge.Y) && region[next] {
				return false
			}
			if b.isCenterAt(edge) && edge != center {
				return false
			}
		}
		for _, d := range diagDeltas {
			corner := cell.Move(d[0], d[1])
			if b.isCenterAt(corner) && corner != center {
				return false
			}
		}
	}
	return true
}

// FindGalaxy returns the galaxy around center: the boundary-enclosed
// connected region touching center that is symmetric about it, contains no
// interior boundaries, and contains no other centers. Returns nil when no
// such galaxy exists. Centers on the periphery or outside the grid are
// rejected with a nil result.
func (b *Board) FindGalaxy(center Place) Region {
	if !b.inBounds(center.X, center.Y) || b.onFrame(center.X, center.Y) {
		return nil
	}
	galaxy := make(Region)
	switch b.Classify(center.X, center.Y) {
	case KindHorizEdge:
		b.accrete(center.Move(0, 1), galaxy)
		b.accrete(center.Move(0, -1), galaxy)
	case KindVertEdge:
		b.accrete(center.Move(1, 0), galaxy)
		b.accrete(center.Move(-1, 0), galaxy)
	case KindIntersection:
		for _, d := range diagDeltas {
			b.accrete(center.Move(d[0], d[1]), galaxy)
		}
	default:
		b.accrete(center, galaxy)
	}
	if !b.isGalaxy(center, galaxy) {
		return nil
	}
	return galaxy
}

// Solved returns true iff the board is solved by the centers and boundaries
// currently on it: every center yields a galaxy, the galaxies are pairwise
// disjoint, and together they cover all rows*cols cells.
func (b *Board) Solved() bool {
	total := 0
	seen := make(Region)
	for _, c := range b.centers {
		galaxy := b.FindGalaxy(c)
		if galaxy == nil {
			return false
		}
		for cell := range galaxy {
			if seen[cell] {
				return false
			}
			seen[cell] = true
		}
		total += len(galaxy)
	}
	return total == b.rows*b.cols
}

// MarkGalaxies marks the cells of every properly formed galaxy with v and
// unmarks all other cells. Requires v >= 0.
func (b *Board) MarkGalaxies(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrBadMark, v)
	}
	if err := b.MarkEvery(0); err != nil {
		return err
	}
	for _, c := range b.centers {
		if galaxy := b.FindGalaxy(c); galaxy != nil {
			if err := b.MarkAll(galaxy.Cells(), v); err != nil {
				return err
			}
		}
	}
	return nil
}
