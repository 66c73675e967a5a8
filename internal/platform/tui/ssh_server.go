package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-galaxies/internal/board"
	"github.com/vovakirdan/tui-galaxies/internal/puzzles"
	"github.com/vovakirdan/tui-galaxies/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.galaxies/host_key.
	HostKeyPath string

	// DBPath is the path to the solves database.
	DBPath string

	// FreestyleCols and FreestyleRows size the freestyle board.
	FreestyleCols int
	FreestyleRows int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:       ":23234",
		DBPath:        "~/.galaxies/solves.db",
		FreestyleCols: board.DefaultSize,
		FreestyleRows: board.DefaultSize,
		IdleTimeout:   30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for serving puzzles over SSH.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "galaxies-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".galaxies", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(s.store, s.config.FreestyleCols, s.config.FreestyleRows,
		pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: picker -> editor -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store         *storage.Store
	freestyleCols int
	freestyleRows int
	width         int
	height        int
	picker        PickerModel
	editor        *EditorModel
	inEditor      bool
	quitting      bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, freestyleCols, freestyleRows, width, height int) SessionModel {
	return SessionModel{
		store:         store,
		freestyleCols: freestyleCols,
		freestyleRows: freestyleRows,
		width:         width,
		height:        height,
		picker:        NewPickerModel(store, freestyleCols, freestyleRows),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inEditor && m.editor != nil {
		return m.updateEditor(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when in picker mode.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if pickerModel, ok := newPicker.(PickerModel); ok {
		m.picker = pickerModel
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.picker.Selected(); selected != nil {
		b, puzzle, err := boardForSelection(selected, m.freestyleCols, m.freestyleRows)
		if err != nil {
			// Shouldn't happen since the picker only lists registered puzzles
			return m, nil
		}

		editor := NewEditorModel(b, puzzle, m.store, m.width, m.height, DefaultEditorOptions())
		m.editor = &editor
		m.inEditor = true
		return m, m.editor.Init()
	}

	return m, cmd
}

// updateEditor handles updates when in editor mode.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.editor.Update(msg)
	if editorModel, ok := newModel.(EditorModel); ok {
		m.editor = &editorModel
	}

	// Back to picker: discard the editor's quit and restart the picker
	if m.editor.BackToPicker() {
		m.inEditor = false
		m.editor = nil
		m.picker = NewPickerModel(m.store, m.freestyleCols, m.freestyleRows)
		return m, m.picker.Init()
	}

	if m.editor.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inEditor && m.editor != nil {
		return m.editor.View()
	}

	return m.picker.View()
}

// boardForSelection builds the board and puzzle for a picker selection.
func boardForSelection(item *PickerItem, freestyleCols, freestyleRows int) (*board.Board, *puzzles.Puzzle, error) {
	if item.Freestyle {
		return board.NewSize(freestyleCols, freestyleRows), nil, nil
	}

	puzzle, err := puzzles.Get(item.PuzzleID)
	if err != nil {
		return nil, nil, err
	}
	b, err := puzzle.Build()
	if err != nil {
		return nil, nil, err
	}
	return b, puzzle, nil
}
