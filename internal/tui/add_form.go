package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	workoutservice "github.com/thenoetrevino/fitcal/internal/services/workout"
	"github.com/thenoetrevino/fitcal/internal/tui/components"
	"github.com/thenoetrevino/fitcal/internal/tui/state"
)

// typeRowLength is the number of type buttons per row
const typeRowLength = 3

// handleAddFormMode handles keyboard input in the add-workout form
func (m Model) handleAddFormMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	key := msg.String()

	switch key {
	case "esc":
		m.FormState.Reset()
		m.UiState.SetMode(state.DaySheetMode)
		return m, nil
	case km.SaveForm:
		return m.submitForm()
	case "tab", "shift+tab":
		return m, m.FormState.ToggleFocus()
	}

	if m.FormState.Focus() == state.FocusNotes {
		var cmd tea.Cmd
		m.FormState.Notes, cmd = m.FormState.Notes.Update(msg)
		return m, cmd
	}

	switch key {
	case "1", "2", "3", "4", "5", "6":
		m.FormState.SelectIndex(int(key[0] - '1'))
	case km.PrevDay, "left":
		m.FormState.MoveCursor(-1)
	case km.NextDay, "right":
		m.FormState.MoveCursor(1)
	case km.PrevWeek, "up":
		m.FormState.MoveCursor(-typeRowLength)
	case km.NextWeek, "down":
		m.FormState.MoveCursor(typeRowLength)
	case "space", " ", "enter":
		m.FormState.SelectCursor()
	case km.ShowHelp:
		m.UiState.OpenHelp()
	}
	return m, nil
}

// submitForm records the workout and closes the form.
// Nothing happens until a type has been chosen.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if !m.FormState.CanSubmit() {
		return m, nil
	}

	req := workoutservice.AddEntryRequest{
		Date:  m.FormState.Date(),
		Type:  m.FormState.Selected(),
		Notes: m.FormState.NotesValue(),
	}
	entry, err := m.App.WorkoutService.Add(m.Ctx, req)
	if err != nil && !errors.Is(err, workoutservice.ErrPersistFailed) {
		slog.Error("failed to add workout", "date", req.Date, "type", req.Type, "error", err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Error adding workout: %v", err))
		return m, nil
	}

	m.FormState.Reset()
	m.CalendarState.Focus(req.Date)
	m.UiState.SetMode(state.CalendarMode)

	if err != nil {
		m.NotificationState.Add(state.LevelWarning, "Workout added, but it could not be saved")
		return m, nil
	}
	m.NotificationState.Add(state.LevelInfo,
		fmt.Sprintf("Added %s on %s", entry.Type, components.FormatSheetDate(req.Date)))
	return m, nil
}
