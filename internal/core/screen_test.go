package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 4)

	s.SetColored(3, 2, '#', ColorYellow)
	if got := s.GetCell(3, 2); got.Rune != '#' || got.Color != ColorYellow {
		t.Errorf("GetCell(3, 2) = %+v, want '#' in yellow", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("untouched cell = %q, want space", got)
	}

	// Out-of-bounds writes are ignored, reads return blanks.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "abcdef")

	if s.Get(3, 0) != 'a' || s.Get(4, 0) != 'b' {
		t.Error("DrawText should write the visible prefix")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(1, 1, 'Q', ColorCyan)

	s.Resize(8, 5)
	if got := s.GetCell(1, 1); got.Rune != 'Q' || got.Color != ColorCyan {
		t.Errorf("cell lost on grow: %+v", got)
	}

	s.Resize(2, 2)
	if got := s.Get(1, 1); got != 'Q' {
		t.Errorf("cell lost on shrink: %q", got)
	}
	if s.Width() != 2 || s.Height() != 2 {
		t.Errorf("size = %dx%d, want 2x2", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
