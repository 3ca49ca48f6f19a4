package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	workoutservice "github.com/thenoetrevino/fitcal/internal/services/workout"
	"github.com/thenoetrevino/fitcal/internal/tui/state"
)

// handleDaySheetMode handles keyboard input while a day's workouts are listed
func (m Model) handleDaySheetMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	entries := m.SheetEntries()

	switch msg.String() {
	case "esc", km.Quit:
		m.UiState.SetMode(state.CalendarMode)
	case km.ShowHelp:
		m.UiState.OpenHelp()
	case km.PrevWeek, "up":
		m.DaySheetState.Move(-1, len(entries))
	case km.NextWeek, "down":
		m.DaySheetState.Move(1, len(entries))
	case km.AddWorkout:
		m.FormState.Open(m.DaySheetState.Date())
		m.UiState.SetMode(state.AddFormMode)
	case km.DeleteWorkout:
		m.deleteSelected()
	}
	return m, nil
}

// deleteSelected removes the selected entry of the open day
func (m Model) deleteSelected() {
	entries := m.SheetEntries()
	if len(entries) == 0 {
		return
	}
	date := m.DaySheetState.Date()
	entry := entries[m.DaySheetState.Selected()]

	_, err := m.App.WorkoutService.Delete(m.Ctx, date, entry.ID)
	m.DaySheetState.Clamp(len(m.SheetEntries()))

	if err != nil {
		if errors.Is(err, workoutservice.ErrPersistFailed) {
			m.NotificationState.Add(state.LevelWarning, "Workout removed, but it could not be saved")
			return
		}
		slog.Error("failed to delete workout", "date", date, "id", entry.ID, "error", err)
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Error deleting workout: %v", err))
		return
	}
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted %s workout", entry.Type))
}
