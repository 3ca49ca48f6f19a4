package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/fitcal/internal/tui/state"
)

// handleCalendarMode handles keyboard input on the month grid
func (m Model) handleCalendarMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	m.NotificationState.Clear()

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.OpenHelp()
	case km.PrevDay, "left":
		m.CalendarState.MoveDays(-1)
	case km.NextDay, "right":
		m.CalendarState.MoveDays(1)
	case km.PrevWeek, "up":
		m.CalendarState.MoveDays(-7)
	case km.NextWeek, "down":
		m.CalendarState.MoveDays(7)
	case km.PrevMonth, "<":
		m.CalendarState.ShiftMonth(-1)
	case km.NextMonth, ">":
		m.CalendarState.ShiftMonth(1)
	case km.GoToday:
		m.CalendarState.Focus(m.Today())
	case km.OpenDay, "space", " ":
		m.openDaySheet()
	}
	return m, nil
}

// openDaySheet shows the focused day in the bottom sheet
func (m Model) openDaySheet() {
	m.DaySheetState.Open(m.CalendarState.Focused())
	m.UiState.SetMode(state.DaySheetMode)
}
