package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-galaxies/internal/board"
	"github.com/vovakirdan/tui-galaxies/internal/core"
	"github.com/vovakirdan/tui-galaxies/internal/puzzles"
	"github.com/vovakirdan/tui-galaxies/internal/storage"
)

// Layout offsets for the editor view.
const (
	boardOffsetX = 2 // Left margin before the board
	boardOffsetY = 2 // Header rows above the board
)

// EditorOptions control the optional chrome around the board.
type EditorOptions struct {
	ShowTimer bool
	ShowHelp  bool
}

// DefaultEditorOptions returns the options used when no config is present.
func DefaultEditorOptions() EditorOptions {
	return EditorOptions{ShowTimer: true, ShowHelp: true}
}

// EditorModel is the Bubble Tea model for editing and solving a board.
// When puzzle is nil the editor runs in freestyle mode: centers can be
// placed and no solve time is recorded.
type EditorModel struct {
	board  *board.Board
	puzzle *puzzles.Puzzle
	store  *storage.Store
	screen *core.Screen

	cursor board.Place
	hint   board.Region

	keys EditorKeyMap
	help help.Model
	opts EditorOptions

	width   int
	height  int
	elapsed int
	solved  bool
	saved   bool
	status  string

	quitting     bool
	backToPicker bool
}

// NewEditorModel creates an editor for the given board.
// puzzle may be nil (freestyle mode); store may be nil (no persistence).
func NewEditorModel(b *board.Board, puzzle *puzzles.Puzzle, store *storage.Store, width, height int, opts EditorOptions) EditorModel {
	h := help.New()
	h.ShowAll = false

	// The screen buffer is sized to the drawn content, not the terminal;
	// the help footer is appended outside the buffer.
	screenW := core.Max(boardOffsetX+b.XLim()+boardOffsetX, 40)
	screenH := boardOffsetY + b.YLim() + 2

	return EditorModel{
		board:  b,
		puzzle: puzzle,
		store:  store,
		screen: core.NewScreen(screenW, screenH),
		cursor: board.At(1, 1),
		keys:   DefaultEditorKeyMap(),
		help:   h,
		opts:   opts,
		width:  width,
		height: height,
		solved: b.Solved(),
	}
}

// Init starts the solve timer.
func (m EditorModel) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the editor state.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.solved {
			m.elapsed++
		}
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input for the editor.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToPicker = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Toggle):
		m.toggleWall()

	case key.Matches(msg, m.keys.Center):
		m.placeCenter()

	case key.Matches(msg, m.keys.Hint):
		m.hint = m.board.MaxUnmarkedRegion(m.cursor)
		if len(m.hint) == 0 {
			m.status = "no symmetric region here"
		} else {
			m.status = ""
		}

	case key.Matches(msg, m.keys.Mark):
		//nolint:errcheck // Mark value 1 is always a valid cell mark
		m.board.MarkGalaxies(1)
		m.hint = nil
		m.status = ""

	case key.Matches(msg, m.keys.Unmark):
		//nolint:errcheck // Mark value 0 is always a valid cell mark
		m.board.MarkEvery(0)
		m.hint = nil
		m.status = ""
	}

	return m, nil
}

// moveCursor moves the cursor by one doubled-grid step, clamped to the board.
func (m *EditorModel) moveCursor(dx, dy int) {
	next := m.cursor.Move(dx, dy)
	next.X = core.Clamp(next.X, 0, m.board.XLim()-1)
	next.Y = core.Clamp(next.Y, 0, m.board.YLim()-1)
	m.cursor = next
}

// toggleWall toggles the boundary under the cursor and rechecks the solution.
func (m *EditorModel) toggleWall() {
	if err := m.board.ToggleBoundary(m.cursor.X, m.cursor.Y); err != nil {
		m.status = "walls go on edges"
		return
	}
	m.hint = nil
	m.status = ""
	m.checkSolved()
}

// placeCenter drops a galaxy center under the cursor (freestyle editing).
func (m *EditorModel) placeCenter() {
	if m.puzzle != nil {
		m.status = "centers are fixed for this puzzle"
		return
	}
	if err := m.board.PlaceCenter(m.cursor); err != nil {
		m.status = "centers cannot sit on the frame"
		return
	}
	m.hint = nil
	m.status = ""
}

// checkSolved detects a completed partition and records the solve once.
func (m *EditorModel) checkSolved() {
	if !m.board.Solved() {
		m.solved = false
		return
	}
	m.solved = true
	m.status = "solved!"

	if m.saved || m.puzzle == nil || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveSolve(m.puzzle.ID, m.elapsed)
	m.saved = true
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHeader()
	m.drawBoard()
	m.drawStatus()

	out := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		// The help component styles itself, so it is appended after the
		// screen buffer instead of being drawn into it.
		out += "\n" + m.help.View(m.keys)
	}
	return out + "\n"
}

// drawHeader draws the title line with the puzzle name and timer.
func (m *EditorModel) drawHeader() {
	title := "Freestyle"
	if m.puzzle != nil {
		title = m.puzzle.Name
	}
	m.screen.DrawTextColored(boardOffsetX, 0, title, core.ColorBrightWhite)

	status := ""
	if m.opts.ShowTimer {
		status = formatElapsed(m.elapsed)
	}
	if m.solved {
		status += "  SOLVED"
	}
	m.screen.DrawTextColored(boardOffsetX+len(title)+3, 0, status, core.ColorBrightYellow)
}

// drawBoard draws the doubled-coordinate grid with the cursor and hint overlay.
func (m *EditorModel) drawBoard() {
	for y := m.board.YLim() - 1; y >= 0; y-- {
		row := boardOffsetY + (m.board.YLim() - 1 - y)
		for x := 0; x < m.board.XLim(); x++ {
			glyph := m.board.Glyph(x, y)
			color := m.glyphColor(x, y)

			if m.cursor.X == x && m.cursor.Y == y {
				if glyph == ' ' {
					glyph = '+'
				}
				color = core.ColorOrange
			}

			m.screen.SetColored(boardOffsetX+x, row, glyph, color)
		}
	}
}

// glyphColor picks a color for the glyph at (x, y).
func (m *EditorModel) glyphColor(x, y int) core.Color {
	switch {
	case m.board.IsCenter(x, y):
		return core.ColorBrightYellow
	case m.hint != nil && m.hint[board.At(x, y)]:
		return core.ColorGreen
	case m.board.IsBoundary(x, y):
		if onBoardFrame(m.board, x, y) {
			return core.ColorGray
		}
		return core.ColorBrightCyan
	case m.board.IsCell(x, y) && m.board.Mark(x, y) != 0:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}

// onBoardFrame reports whether (x, y) lies on the outer frame.
func onBoardFrame(b *board.Board, x, y int) bool {
	return x == 0 || y == 0 || x == b.XLim()-1 || y == b.YLim()-1
}

// drawStatus draws the status line below the board.
func (m *EditorModel) drawStatus() {
	if m.status == "" {
		return
	}
	statusRow := boardOffsetY + m.board.YLim() + 1
	m.screen.DrawTextColored(boardOffsetX, statusRow, m.status, core.ColorBrightCyan)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}

// BackToPicker returns true if the user requested to return to the picker.
func (m EditorModel) BackToPicker() bool {
	return m.backToPicker
}

// Solved returns true if the board currently forms a valid partition.
func (m EditorModel) Solved() bool {
	return m.solved
}

// RunEditor runs the editor as a standalone Bubble Tea program.
// Returns true if the user asked to go back rather than quit.
func RunEditor(b *board.Board, puzzle *puzzles.Puzzle, store *storage.Store, width, height int, opts EditorOptions) (bool, error) {
	model := NewEditorModel(b, puzzle, store, width, height, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(EditorModel); ok {
		return m.BackToPicker(), nil
	}
	return false, nil
}
