package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaxies/internal/puzzles"
)

var showCmd = &cobra.Command{
	Use:   "show <puzzle>",
	Short: "Print a puzzle board to stdout",
	Long: `Render the initial board of a puzzle as plain text.

Examples:
  galaxies show quadrants
  galaxies show three-bands`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	id := args[0]

	puzzle, err := puzzles.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'galaxies list' to see available puzzles.")
		os.Exit(1)
	}

	b, err := puzzle.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building puzzle: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%dx%d, %s)\n\n", puzzle.Name, puzzle.Cols, puzzle.Rows, puzzle.Difficulty)
	fmt.Print(b.String())
}
