package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some solves
	for _, secs := range []int{100, 50, 200} {
		if _, err := store.SaveSolve("quadrants", secs); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	// Different puzzle
	if _, err := store.SaveSolve("three-bands", 500); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	solves, err := store.TopTimes("quadrants", 10)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}

	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(solves))
	}

	// Should be sorted ascending (fastest first)
	if solves[0].Seconds != 50 {
		t.Errorf("Expected fastest solve to be 50s, got %d", solves[0].Seconds)
	}
	if solves[1].Seconds != 100 {
		t.Errorf("Expected second solve to be 100s, got %d", solves[1].Seconds)
	}
	if solves[2].Seconds != 200 {
		t.Errorf("Expected third solve to be 200s, got %d", solves[2].Seconds)
	}

	bandSolves, err := store.TopTimes("three-bands", 10)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}
	if len(bandSolves) != 1 {
		t.Errorf("Expected 1 solve for three-bands, got %d", len(bandSolves))
	}
}

func TestTopTimesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveSolve("quadrants", i*10); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	solves, err := store.TopTimes("quadrants", 3)
	if err != nil {
		t.Fatalf("TopTimes() failed: %v", err)
	}
	if len(solves) != 3 {
		t.Errorf("Expected 3 solves with limit 3, got %d", len(solves))
	}
}

func TestBestTime(t *testing.T) {
	store := openTestStore(t)

	// No solves yet
	if _, ok, err := store.BestTime("quadrants"); err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	} else if ok {
		t.Error("Expected no best time for unsolved puzzle")
	}

	for _, secs := range []int{90, 45, 120} {
		if _, err := store.SaveSolve("quadrants", secs); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	best, ok, err := store.BestTime("quadrants")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a best time after saving solves")
	}
	if best != 45 {
		t.Errorf("Expected best time 45, got %d", best)
	}
}

func TestRecentSolves(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSolve("first-light", 10); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve("twin-suns", 20); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve("quadrants", 30); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	recent, err := store.RecentSolves(2)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent solves, got %d", len(recent))
	}
	// Most recent first
	if recent[0].PuzzleID != "quadrants" {
		t.Errorf("Expected most recent solve to be quadrants, got %s", recent[0].PuzzleID)
	}
	if recent[1].PuzzleID != "twin-suns" {
		t.Errorf("Expected second recent solve to be twin-suns, got %s", recent[1].PuzzleID)
	}
}

func TestSolveCount(t *testing.T) {
	store := openTestStore(t)

	count, err := store.SolveCount("quadrants")
	if err != nil {
		t.Fatalf("SolveCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 solves, got %d", count)
	}

	for i := 0; i < 4; i++ {
		if _, err := store.SaveSolve("quadrants", 60); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	count, err = store.SolveCount("quadrants")
	if err != nil {
		t.Fatalf("SolveCount() failed: %v", err)
	}
	if count != 4 {
		t.Errorf("Expected 4 solves, got %d", count)
	}
}

func TestClearSolves(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSolve("quadrants", 60); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve("twin-suns", 15); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	if err := store.ClearSolves("quadrants"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	count, err := store.SolveCount("quadrants")
	if err != nil {
		t.Fatalf("SolveCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 solves after clear, got %d", count)
	}

	// Other puzzles untouched
	count, err = store.SolveCount("twin-suns")
	if err != nil {
		t.Fatalf("SolveCount() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected twin-suns solves to survive clear, got %d", count)
	}
}
