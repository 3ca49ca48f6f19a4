package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/fitcal/internal/tui/layers"
	"github.com/thenoetrevino/fitcal/internal/tui/state"
)

// Update handles all incoming messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		slog.Info("context cancelled, shutting down TUI")
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.FormState.Notes.SetWidth(m.formWidth() - 6)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and other textarea messages
	if m.notesFocused() {
		var cmd tea.Cmd
		m.FormState.Notes, cmd = m.FormState.Notes.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyMsg dispatches keyboard input to the handler of the current mode
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.UiState.Mode() {
	case state.CalendarMode:
		return m.handleCalendarMode(msg)
	case state.DaySheetMode:
		return m.handleDaySheetMode(msg)
	case state.AddFormMode:
		return m.handleAddFormMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

func (m Model) notesFocused() bool {
	return m.UiState.Mode() == state.AddFormMode && m.FormState.Focus() == state.FocusNotes
}

func (m Model) sheetWidth() int {
	return layers.SheetWidth(m.UiState.Width(), layers.DaySheetMinWidth, layers.DaySheetMaxWidth)
}

func (m Model) formWidth() int {
	return layers.SheetWidth(m.UiState.Width(), layers.FormMinWidth, layers.FormMaxWidth)
}
