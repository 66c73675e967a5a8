package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaxies/internal/puzzles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all built-in puzzles",
	Long:  `Shows a list of all puzzles bundled with the editor.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := puzzles.List()

	if len(infos) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Built-in puzzles:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-10s  %s\n", maxIDLen, "ID", "Size", "Difficulty", "Name")
	fmt.Printf("  %-*s  %-6s  %-10s  %s\n", maxIDLen, "--", "----", "----------", "----")

	// Print puzzles
	for _, info := range infos {
		size := fmt.Sprintf("%dx%d", info.Cols, info.Rows)
		fmt.Printf("  %-*s  %-6s  %-10s  %s\n", maxIDLen, info.ID, size, info.Difficulty, info.Name)
	}

	fmt.Println()
	fmt.Println("Run 'galaxies play <id>' to solve a puzzle.")
}
