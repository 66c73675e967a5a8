// Package tui provides the Bubble Tea integration for the galaxies editor.
// It handles the terminal UI loop, input mapping, and puzzle session flow.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to advance the solve timer.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// formatElapsed renders a second count as mm:ss (or h:mm:ss past an hour).
func formatElapsed(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
