package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-galaxies/internal/puzzles"
	"github.com/vovakirdan/tui-galaxies/internal/storage"
)

// PickerItem represents a selectable entry in the puzzle picker.
type PickerItem struct {
	PuzzleID  string // Empty for freestyle mode
	Title     string
	Size      string
	BestTime  string
	Freestyle bool
}

// PickerModel is the Bubble Tea model for the puzzle picker menu.
type PickerModel struct {
	items    []PickerItem
	cursor   int
	keys     PickerKeyMap
	help     help.Model
	width    int
	quitting bool
	selected *PickerItem
}

// NewPickerModel creates a picker listing the registered puzzles plus a
// freestyle entry with the given default dimensions.
func NewPickerModel(store *storage.Store, freestyleCols, freestyleRows int) PickerModel {
	infos := puzzles.List()
	items := make([]PickerItem, 0, len(infos)+1)

	items = append(items, PickerItem{
		Title:     "Freestyle",
		Size:      fmt.Sprintf("%dx%d", freestyleCols, freestyleRows),
		Freestyle: true,
	})

	for _, info := range infos {
		best := "--:--"
		if store != nil {
			if secs, ok, err := store.BestTime(info.ID); err == nil && ok {
				best = formatElapsed(secs)
			}
		}
		items = append(items, PickerItem{
			PuzzleID: info.ID,
			Title:    info.Name,
			Size:     fmt.Sprintf("%dx%d", info.Cols, info.Rows),
			BestTime: best,
		})
	}

	h := help.New()
	h.ShowAll = false

	return PickerModel{
		items: items,
		keys:  DefaultPickerKeyMap(),
		help:  h,
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n  G A L A X I E S\n\n")
	b.WriteString("  Select a puzzle\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("  %s%-18s %-6s", cursor, item.Title, item.Size)
		if !item.Freestyle {
			line += "  best " + item.BestTime
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected item, or nil if none was chosen.
func (m PickerModel) Selected() *PickerItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// RunPicker runs the picker and returns the selected item, or nil if the
// user quit.
func RunPicker(store *storage.Store, freestyleCols, freestyleRows int) (*PickerItem, error) {
	model := NewPickerModel(store, freestyleCols, freestyleRows)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	if m, ok := finalModel.(PickerModel); ok {
		return m.Selected(), nil
	}
	return nil, nil
}
