// Package storage provides SQLite-based persistence for puzzle solve times.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// SolveEntry represents a single completed solve.
type SolveEntry struct {
	ID       int64
	PuzzleID string
	Seconds  int
	SolvedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			solved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle_id ON solves(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(puzzle_id, seconds ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolve records a completed solve for the given puzzle.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(puzzleID string, seconds int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (puzzle_id, seconds) VALUES (?, ?)",
		puzzleID, seconds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTime returns the fastest solve in seconds for the given puzzle.
// The second return value is false if the puzzle has never been solved.
func (s *Store) BestTime(puzzleID string) (int, bool, error) {
	var seconds sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(seconds) FROM solves WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&seconds)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !seconds.Valid {
		return 0, false, nil
	}

	return int(seconds.Int64), true, nil
}

// TopTimes retrieves the fastest N solves for the given puzzle.
// Results are ordered by seconds ascending.
func (s *Store) TopTimes(puzzleID string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, seconds, solved_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY seconds ASC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// RecentSolves retrieves the most recent solves across all puzzles.
func (s *Store) RecentSolves(limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, seconds, solved_at
		 FROM solves
		 ORDER BY solved_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// SolveCount returns the number of recorded solves for the given puzzle.
func (s *Store) SolveCount(puzzleID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM solves WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count solves: %w", err)
	}
	return count, nil
}

// ClearSolves deletes all solves for the given puzzle.
func (s *Store) ClearSolves(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// scanSolves reads solve rows, tolerating both time.Time and string
// representations of the solved_at column.
func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var solvedAt any
		if err := rows.Scan(&e.ID, &e.PuzzleID, &e.Seconds, &solvedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch v := solvedAt.(type) {
		case time.Time:
			e.SolvedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.SolvedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
