package board

import "testing"

func regionsEqual(a, b Region) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

// On an untouched board the region around the middle cell is the whole
// board; boundaries are irrelevant to the growth.
func TestMaxUnmarkedRegionOpenBoard(t *testing.T) {
	b := New()
	b.ToggleBoundary(2, 7) // must be ignored

	region := b.MaxUnmarkedRegion(At(7, 7))
	if len(region) != b.Cols()*b.Rows() {
		t.Errorf("region has %d cells, want %d", len(region), b.Cols()*b.Rows())
	}
}

// Near a corner, symmetry about the point caps the region at the cells
// whose reflections stay on the board.
func TestMaxUnmarkedRegionCorner(t *testing.T) {
	b := New()

	region := b.MaxUnmarkedRegion(At(1, 1))
	if len(region) != 1 || !region[At(1, 1)] {
		t.Errorf("corner cell region = %v, want just (1,1)", region.Cells())
	}
}

func TestMaxUnmarkedRegionSeeding(t *testing.T) {
	b := New()

	tests := []struct {
		name  string
		point Place
		seeds []Place
	}{
		{"cell point", At(7, 7), []Place{At(7, 7)}},
		{"vertical edge point", At(6, 7), []Place{At(5, 7), At(7, 7)}},
		{"horizontal edge point", At(7, 6), []Place{At(7, 5), At(7, 7)}},
		{"intersection point", At(6, 6), []Place{At(5, 5), At(5, 7), At(7, 5), At(7, 7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := b.MaxUnmarkedRegion(tt.point)
			for _, s := range tt.seeds {
				if !region[s] {
					t.Errorf("region should contain touching cell %v", s)
				}
			}
		})
	}
}

// A marked cell touching the point empties the whole result.
func TestMaxUnmarkedRegionBlockedSeed(t *testing.T) {
	b := New()
	b.SetMark(7, 7, 1)

	for _, point := range []Place{At(7, 7), At(6, 7), At(6, 6)} {
		if region := b.MaxUnmarkedRegion(point); len(region) != 0 {
			t.Errorf("point %v touching a marked cell gave %d cells, want 0", point, len(region))
		}
	}
}

// Pre-marking cells can only shrink the region, never grow it.
func TestMaxUnmarkedRegionShrinksUnderMarks(t *testing.T) {
	b := New()
	point := At(7, 7)
	open := len(b.MaxUnmarkedRegion(point))

	b.SetMark(1, 7, 1)
	partial := len(b.MaxUnmarkedRegion(point))
	if partial > open {
		t.Errorf("region grew from %d to %d after marking", open, partial)
	}

	b.SetMark(13, 7, 1)
	smaller := len(b.MaxUnmarkedRegion(point))
	if smaller > partial {
		t.Errorf("region grew from %d to %d after marking", partial, smaller)
	}
}

// The growth computation is read-only and therefore idempotent: marks are
// untouched and repeated calls agree.
func TestMaxUnmarkedRegionReadOnly(t *testing.T) {
	b := New()
	b.SetMark(3, 3, 4)
	point := At(7, 7)

	first := b.MaxUnmarkedRegion(point)
	second := b.MaxUnmarkedRegion(point)
	if !regionsEqual(first, second) {
		t.Error("back-to-back calls returned different regions")
	}

	if got := b.Mark(3, 3); got != 4 {
		t.Errorf("external mark changed to %d, want 4", got)
	}
	for y := 1; y < b.YLim(); y += 2 {
		for x := 1; x < b.XLim(); x += 2 {
			if x == 3 && y == 3 {
				continue
			}
			if got := b.Mark(x, y); got != 0 {
				t.Errorf("Mark(%d, %d) = %d after growth, want 0", x, y, got)
			}
		}
	}
}

// The grown region is symmetric about the point and contiguous.
func TestMaxUnmarkedRegionSymmetric(t *testing.T) {
	b := New()
	b.SetMark(11, 7, 1)
	point := At(7, 7)

	region := b.MaxUnmarkedRegion(point)
	if len(region) == 0 {
		t.Fatal("expected a nonempty region")
	}
	if region[At(11, 7)] {
		t.Error("marked cell must not appear in the region")
	}
	// Marking (11,7) also bans its mirror (3,7) by symmetry.
	if region[At(3, 7)] {
		t.Error("mirror of the marked cell must not appear in the region")
	}
	for cell := range region {
		opp, ok := b.Opposing(point, cell)
		if !ok || !region[opp] {
			t.Errorf("region not symmetric at %v", cell)
		}
	}
}
