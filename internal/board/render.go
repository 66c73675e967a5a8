package board

import "strings"

// Glyph returns the display character for the coordinate (x, y):
//
//	intersections:    'o' when a center sits there, ' ' otherwise
//	cells:            center 'O'/'o' (marked/unmarked), else '*'/' '
//	horizontal edges: center 'O'/'o' (boundary/not), else '='/'-'
//	vertical edges:   center 'O'/'o' (boundary/not), else 'I'/'|'
func (b *Board) Glyph(x, y int) rune {
	center := b.IsCenter(x, y)
	bound := b.IsBoundary(x, y)
	switch b.Classify(x, y) {
	case KindIntersection:
		if center {
			return 'o'
		}
		return ' '
	case KindCell:
		if center {
			if b.Mark(x, y) > 0 {
				return 'O'
			}
			return 'o'
		}
		if b.Mark(x, y) > 0 {
			return '*'
		}
		return ' '
	case KindHorizEdge:
		switch {
		case center && bound:
			return 'O'
		case center:
			return 'o'
		case bound:
			return '='
		default:
			return '-'
		}
	case KindVertEdge:
		switch {
		case center && bound:
			return 'O'
		case center:
			return 'o'
		case bound:
			return 'I'
		default:
			return '|'
		}
	default:
		return ' '
	}
}

// String renders the board as a fixed-width character grid, one character
// per coordinate, rows printed top to bottom.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.XLim() + 1) * b.YLim())
	for y := b.YLim() - 1; y >= 0; y-- {
		for x := 0; x < b.XLim(); x++ {
			sb.WriteRune(b.Glyph(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
