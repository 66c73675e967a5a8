package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-galaxies/internal/board"
	"github.com/vovakirdan/tui-galaxies/internal/platform/tui"
	"github.com/vovakirdan/tui-galaxies/internal/puzzles"
	"github.com/vovakirdan/tui-galaxies/internal/storage"
)

var flagPuzzleFile string

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Solve a puzzle",
	Long: `Open the editor on the specified puzzle. With no argument an
interactive picker is shown, including a freestyle board for designing
your own puzzle.

Controls:
  Arrows/WASD - Move cursor
  Space/Enter - Toggle wall under cursor
  C           - Place galaxy center (freestyle only)
  H           - Highlight the largest symmetric region at the cursor
  M           - Mark completed galaxies
  U           - Clear marks
  ?           - Toggle full help
  Esc/B       - Back to picker
  Q/Ctrl+C    - Quit

Examples:
  galaxies play
  galaxies play quadrants
  galaxies play --file ./my-puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPuzzleFile, "file", "", "Path to a puzzle YAML file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// Terminal size for the editor layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: solves will not be recorded: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.EditorOptions{
		ShowTimer: cfg.UI.ShowTimer,
		ShowHelp:  cfg.UI.ShowHelp,
	}

	// A specific puzzle was requested: open the editor directly.
	if flagPuzzleFile != "" || len(args) == 1 {
		puzzle, err := resolvePuzzle(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		b, err := puzzle.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, err := tui.RunEditor(b, puzzle, store, width, height, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// No puzzle given: loop picker -> editor until the user quits.
	for {
		item, err := tui.RunPicker(store, cfg.Board.Cols, cfg.Board.Rows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if item == nil {
			return
		}

		var b *board.Board
		var puzzle *puzzles.Puzzle
		if item.Freestyle {
			b = board.NewSize(cfg.Board.Cols, cfg.Board.Rows)
		} else {
			puzzle, err = puzzles.Get(item.PuzzleID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			b, err = puzzle.Build()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		back, err := tui.RunEditor(b, puzzle, store, width, height, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !back {
			return
		}
	}
}

// resolvePuzzle picks the puzzle from --file or the positional argument.
func resolvePuzzle(args []string) (*puzzles.Puzzle, error) {
	if flagPuzzleFile != "" {
		return puzzles.Load(flagPuzzleFile)
	}

	id := args[0]
	if !puzzles.Exists(id) {
		return nil, fmt.Errorf("unknown puzzle %q, run 'galaxies list' to see available puzzles", id)
	}
	return puzzles.Get(id)
}
