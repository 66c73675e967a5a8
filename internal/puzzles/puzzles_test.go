package puzzles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-galaxies/internal/board"
)

func TestBuiltinsRegistered(t *testing.T) {
	infos := List()
	if len(infos) == 0 {
		t.Fatal("no built-in puzzles registered")
	}

	for _, id := range []string{"first-light", "twin-suns", "quadrants", "three-bands", "head-start"} {
		if !Exists(id) {
			t.Errorf("built-in puzzle %q missing", id)
		}
	}

	// List is sorted by ID.
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

// Every shipped puzzle must actually be solvable by drawing boundaries.
// The band and quadrant layouts have known solutions; verify them end to end.
func TestBuiltinSolutions(t *testing.T) {
	tests := []struct {
		id    string
		walls []Coord
	}{
		{"first-light", nil},
		{"twin-suns", []Coord{{X: 2, Y: 1}}},
		{"head-start", nil}, // preset boundary is already the solution
		{"quadrants", []Coord{
			{X: 4, Y: 1}, {X: 4, Y: 3}, {X: 4, Y: 5}, {X: 4, Y: 7},
			{X: 1, Y: 4}, {X: 3, Y: 4}, {X: 5, Y: 4}, {X: 7, Y: 4},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := Get(tt.id)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", tt.id, err)
			}
			b, err := p.Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			for _, w := range tt.walls {
				if err := b.ToggleBoundary(w.X, w.Y); err != nil {
					t.Fatalf("ToggleBoundary(%d, %d) failed: %v", w.X, w.Y, err)
				}
			}
			if !b.Solved() {
				t.Errorf("%s should be solved by its known solution", tt.id)
			}
		})
	}
}

func TestThreeBandsSolution(t *testing.T) {
	p, err := Get("three-bands")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	b, err := p.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for x := 1; x < b.XLim(); x += 2 {
		b.ToggleBoundary(x, 4)
		b.ToggleBoundary(x, 10)
	}
	if !b.Solved() {
		t.Error("three-bands should be solved by the two band walls")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		p    Puzzle
	}{
		{"no id", Puzzle{Cols: 2, Rows: 2, Centers: []Coord{{X: 2, Y: 2}}}},
		{"no centers", Puzzle{ID: "x", Cols: 2, Rows: 2}},
		{"bad size", Puzzle{ID: "x", Cols: 0, Rows: 2, Centers: []Coord{{X: 1, Y: 1}}}},
		{"center out of bounds", Puzzle{ID: "x", Cols: 2, Rows: 2, Centers: []Coord{{X: 9, Y: 1}}}},
		{"center on frame", Puzzle{ID: "x", Cols: 2, Rows: 2, Centers: []Coord{{X: 0, Y: 1}}}},
		{"duplicate center", Puzzle{ID: "x", Cols: 2, Rows: 2, Centers: []Coord{{X: 1, Y: 1}, {X: 1, Y: 1}}}},
		{"boundary not an edge", Puzzle{ID: "x", Cols: 2, Rows: 2,
			Centers: []Coord{{X: 2, Y: 2}}, Boundaries: []Coord{{X: 1, Y: 1}}}},
		{"boundary on periphery", Puzzle{ID: "x", Cols: 2, Rows: 2,
			Centers: []Coord{{X: 2, Y: 2}}, Boundaries: []Coord{{X: 1, Y: 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.p.Validate(); err == nil {
				t.Error("Validate should have failed")
			}
		})
	}
}

func TestBuildAppliesSetup(t *testing.T) {
	p, err := Get("head-start")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	b, err := p.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !b.IsCenter(1, 1) || !b.IsCenter(4, 1) {
		t.Error("built board is missing centers")
	}
	if !b.IsBoundary(2, 1) {
		t.Error("built board is missing the preset boundary")
	}
	if b.Cols() != 3 || b.Rows() != 1 {
		t.Errorf("board size = %dx%d, want 3x1", b.Cols(), b.Rows())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	def := `id: custom
name: Custom
difficulty: easy
cols: 2
rows: 1
centers:
  - {x: 1, y: 1}
  - {x: 3, y: 1}
`
	if err := os.WriteFile(path, []byte(def), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.ID != "custom" || p.Cols != 2 || len(p.Centers) != 2 {
		t.Errorf("loaded puzzle mismatch: %+v", p)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestBuildCentersSurviveOnBoard(t *testing.T) {
	p, err := Get("first-light")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	b, err := p.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	centers := b.Centers()
	if len(centers) != 1 || centers[0] != board.At(2, 2) {
		t.Errorf("centers = %v, want [(2,2)]", centers)
	}
	// One centered galaxy over the whole 2x2 board is immediately solved.
	if !b.Solved() {
		t.Error("first-light should be solved with no extra walls")
	}
}
