// Package puzzles defines Galaxies puzzle setups and a registry of built-in
// puzzles. A puzzle is a board size plus the centers the player must enclose;
// preset boundaries are optional and rare.
package puzzles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-galaxies/internal/board"
)

// Coord is a coordinate pair in the board's doubled coordinate system.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Puzzle describes one Galaxies setup.
type Puzzle struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Difficulty string  `yaml:"difficulty"`
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	Centers    []Coord `yaml:"centers"`
	Boundaries []Coord `yaml:"boundaries,omitempty"`
}

// Validate checks the puzzle definition: positive dimensions, at least one
// center, every center in bounds and off the board frame, every preset
// boundary a non-periphery edge, and no duplicates in either list.
func (p *Puzzle) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("puzzles: puzzle has no id")
	}
	if p.Cols < 1 || p.Rows < 1 {
		return fmt.Errorf("puzzles: %s: bad size %dx%d", p.ID, p.Cols, p.Rows)
	}
	if len(p.Centers) == 0 {
		return fmt.Errorf("puzzles: %s: no centers", p.ID)
	}

	// A throwaway board supplies classification for this size.
	b := board.NewSize(p.Cols, p.Rows)

	seen := make(map[Coord]bool)
	for _, c := range p.Centers {
		if seen[c] {
			return fmt.Errorf("puzzles: %s: duplicate center (%d,%d)", p.ID, c.X, c.Y)
		}
		seen[c] = true
		if err := b.PlaceCenter(board.At(c.X, c.Y)); err != nil {
			return fmt.Errorf("puzzles: %s: %w", p.ID, err)
		}
	}

	seen = make(map[Coord]bool)
	for _, e := range p.Boundaries {
		if seen[e] {
			return fmt.Errorf("puzzles: %s: duplicate boundary (%d,%d)", p.ID, e.X, e.Y)
		}
		seen[e] = true
		if !b.IsEdge(e.X, e.Y) {
			return fmt.Errorf("puzzles: %s: boundary (%d,%d): %w", p.ID, e.X, e.Y, board.ErrNotEdge)
		}
		if b.IsBoundary(e.X, e.Y) {
			return fmt.Errorf("puzzles: %s: boundary (%d,%d) is on the periphery", p.ID, e.X, e.Y)
		}
	}
	return nil
}

// Build creates a fresh board with the puzzle's centers and preset
// boundaries applied.
func (p *Puzzle) Build() (*board.Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := board.NewSize(p.Cols, p.Rows)
	for _, c := range p.Centers {
		if err := b.PlaceCenter(board.At(c.X, c.Y)); err != nil {
			return nil, err
		}
	}
	for _, e := range p.Boundaries {
		if err := b.ToggleBoundary(e.X, e.Y); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Parse decodes a single puzzle from YAML and validates it.
func Parse(data []byte) (*Puzzle, error) {
	var p Puzzle
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("puzzles: cannot parse puzzle: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and validates a puzzle from a YAML file.
func Load(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzles: cannot read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("puzzles: %s: %w", path, err)
	}
	return p, nil
}
