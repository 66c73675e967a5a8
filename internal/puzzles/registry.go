package puzzles

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains display metadata about a registered puzzle.
type Info struct {
	ID         string
	Name       string
	Difficulty string
	Cols       int
	Rows       int
}

var (
	catalog = make(map[string]*Puzzle)
	mu      sync.RWMutex
)

// Register adds a puzzle to the catalog.
// Typically called from init() for the embedded puzzles.
// Panics if a puzzle with the same ID is already registered.
func Register(p *Puzzle) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := catalog[p.ID]; exists {
		panic(fmt.Sprintf("puzzles: puzzle %q already registered", p.ID))
	}
	catalog[p.ID] = p
}

// List returns information about all registered puzzles, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(catalog))
	for _, p := range catalog {
		result = append(result, Info{
			ID:         p.ID,
			Name:       p.Name,
			Difficulty: p.Difficulty,
			Cols:       p.Cols,
			Rows:       p.Rows,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered puzzle by its ID.
func Get(id string) (*Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := catalog[id]
	if !ok {
		return nil, fmt.Errorf("puzzles: unknown puzzle %q", id)
	}
	return p, nil
}

// Exists checks if a puzzle with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := catalog[id]
	return ok
}
