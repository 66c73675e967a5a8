// galaxies is a TUI editor for solving galaxies puzzles in the terminal.
//
// Usage:
//
//	galaxies list              - List built-in puzzles
//	galaxies play [puzzle]     - Solve a puzzle (or pick one interactively)
//	galaxies show <puzzle>     - Print a puzzle board to stdout
//	galaxies times <puzzle>    - Show fastest solve times for a puzzle
//	galaxies serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to custom config YAML
//	--db <path>      - Path to solves database (default from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-galaxies/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "galaxies",
	Short: "Galaxies - solve symmetry puzzles in your terminal",
	Long: `Galaxies is a terminal puzzle editor for the galaxies puzzle type:
divide the grid into regions so that every region is symmetric about
exactly one of the marked centers.

Available commands:
  list     - Show all built-in puzzles
  play     - Solve a puzzle (interactive picker when no puzzle is given)
  show     - Print a puzzle board to stdout
  times    - View fastest solve times
  serve    - Start SSH server for remote play

Examples:
  galaxies list
  galaxies play quadrants
  galaxies play --file ./my-puzzle.yaml
  galaxies serve --ssh :2222
  galaxies times quadrants`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database (default from config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration honoring the global --config flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// dbPath resolves the solves database path from flags and config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}
