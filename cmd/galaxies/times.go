package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaxies/internal/puzzles"
	"github.com/vovakirdan/tui-galaxies/internal/storage"
)

var timesCmd = &cobra.Command{
	Use:   "times [puzzle]",
	Short: "Show solve times",
	Long: `Display the top 10 fastest solves for the specified puzzle,
or the most recent solves across all puzzles when no puzzle is given.

Examples:
  galaxies times
  galaxies times quadrants
  galaxies times three-bands`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTimes,
}

func runTimes(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runRecentTimes()
		return
	}
	id := args[0]

	if !puzzles.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'galaxies list' to see available puzzles.")
		os.Exit(1)
	}

	puzzle, err := puzzles.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig()
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	solves, err := store.TopTimes(id, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fastest solves - %s\n", puzzle.Name)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'galaxies play %s' to set the first time!\n", id)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")

	// Print solves
	for i, entry := range solves {
		timeStr := fmt.Sprintf("%02d:%02d", entry.Seconds/60, entry.Seconds%60)
		dateStr := entry.SolvedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, timeStr, dateStr)
	}

	fmt.Println()
	if best, ok, err := store.BestTime(id); err == nil && ok {
		fmt.Printf("Best: %02d:%02d\n", best/60, best%60)
	}
}

// runRecentTimes prints the latest solves across every puzzle.
func runRecentTimes() {
	cfg := loadConfig()
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	solves, err := store.RecentSolves(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent solves")
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %-8s  %s\n", "Puzzle", "Time", "Date")
	fmt.Printf("  %-14s  %-8s  %s\n", "------", "----", "----")

	for _, entry := range solves {
		timeStr := fmt.Sprintf("%02d:%02d", entry.Seconds/60, entry.Seconds%60)
		dateStr := entry.SolvedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-14s  %-8s  %s\n", entry.PuzzleID, timeStr, dateStr)
	}
}
