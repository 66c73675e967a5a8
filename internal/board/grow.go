package board

// MaxUnmarkedRegion returns the largest region around point that contains
// every cell touching point, consists only of currently unmarked cells, is
// symmetric about point, and is contiguous. Boundaries and declared centers
// are ignored; the computation is a "what if" over marks alone. Returns the
// empty region when any cell touching point is already marked.
//
// Cells accepted into the growing region are tracked in a scratch set local
// to the call, so the method never writes to the board's mark map and is
// safe to call repeatedly with identical results.
func (b *Board) MaxUnmarkedRegion(point Place) Region {
	region := make(Region)
	seeds := b.unmarkedContaining(point)
	if len(seeds) == 0 {
		return region
	}
	for _, c := range seeds {
		region[c] = true
	}

	// Grow one ring at a time until a pass adds nothing. Each pass scans
	// the full accepted list; region is finite and strictly grows, so the
	// loop terminates.
	all := append([]Place(nil), seeds...)
	for {
		added := b.unmarkedSymAdjacent(point, all, region)
		if len(added) == 0 {
			break
		}
		for _, c := range added {
			region[c] = true
		}
		all = append(all, added...)
	}
	return region
}

// unmarkedContaining returns all cells touching place — the cell itself, or
// the cells having place as an edge or corner — provided every one of them
// is unmarked. Otherwise it returns nil.
func (b *Board) unmarkedContaining(place Place) []Place {
	switch b.Classify(place.X, place.Y) {
	case KindCell:
		if b.Mark(place.X, place.Y) == 0 {
			return []Place{place}
		}
	case KindVertEdge:
		left, right := place.Move(-1, 0), place.Move(1, 0)
		if b.Mark(left.X, left.Y) == 0 && b.Mark(right.X, right.Y) == 0 {
			return []Place{left, right}
		}
	case KindHorizEdge:
		below, above := place.Move(0, -1), place.Move(0, 1)
		if b.Mark(below.X, below.Y) == 0 && b.Mark(above.X, above.Y) == 0 {
			return []Place{below, above}
		}
	case KindIntersection:
		cells := make([]Place, 0, 4)
		for _, d := range diagDeltas {
			c := place.Move(d[0], d[1])
			if b.Mark(c.X, c.Y) != 0 {
				return nil
			}
			cells = append(cells, c)
		}
		return cells
	}
	return nil
}

// unmarkedSymAdjacent returns every cell c such that c and its reflection
// about center are both unmarked and not yet taken into the region, and c
// is horizontally or vertically adjacent to a cell in cells. Each cell
// appears at most once in the result. All members of cells must be valid
// cell positions.
func (b *Board) unmarkedSymAdjacent(center Place, cells []Place, taken Region) []Place {
	var result []Place
	picked := make(Region)
	for _, r := range cells {
		for _, d := range axisDeltas {
			p := r.Move(2*d[0], 2*d[1])
			opp, ok := b.Opposing(center, p)
			if !ok || picked[p] {
				continue
			}
			if b.Mark(p.X, p.Y) != 0 || taken[p] {
				continue
			}
			if b.Mark(opp.X, opp.Y) != 0 || taken[opp] {
				continue
			}
			picked[p] = true
			result = append(result, p)
		}
	}
	return result
}
