package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/fitcal/internal/calendar"
	"github.com/thenoetrevino/fitcal/internal/models"
	"github.com/thenoetrevino/fitcal/internal/tui/components"
	"github.com/thenoetrevino/fitcal/internal/tui/layers"
	"github.com/thenoetrevino/fitcal/internal/tui/notifications"
	"github.com/thenoetrevino/fitcal/internal/tui/state"
	"github.com/thenoetrevino/fitcal/internal/tui/theme"
)

// rows taken by one bordered week of day cells
const fullCellHeight = 4

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{lipgloss.NewLayer(m.viewCalendar())}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.DaySheetMode:
		modal = m.daySheetLayer()
	case state.AddFormMode:
		modal = m.addFormLayer()
	case state.HelpMode:
		modal = layers.CreateCenteredLayer(
			components.RenderHelp(m.Config.KeyMappings, layers.HelpWidth),
			m.UiState.Width(), m.UiState.Height())
	}
	if modal != nil {
		stack = append(stack, modal)
	}

	// Errors float top-right; everything else shows in the status bar
	stack = append(stack, m.NotificationState.GetLayers(func(n state.Notification) string {
		if n.Level != state.LevelError {
			return ""
		}
		return notifications.RenderFromState(n)
	})...)

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// viewCalendar renders the month header, the day grid and the status bar
func (m Model) viewCalendar() string {
	width := m.UiState.Width()
	month := m.CalendarState.ViewMonth()
	cells := calendar.DeriveMonthGridFrom(month, m.Config.WeekStartDay())

	weeks := len(cells) / models.DaysPerWeek
	compact := m.UiState.ContentHeight() < weeks*fullCellHeight+1 ||
		width < models.DaysPerWeek*(components.MinFullCellWidth+2)

	header := components.RenderMonthHeader(components.MonthHeaderProps{
		Title:   m.CalendarState.MonthTitle(),
		PrevKey: m.Config.KeyMappings.PrevMonth,
		NextKey: m.Config.KeyMappings.NextMonth,
		Width:   width,
	})
	grid := components.RenderMonthGrid(components.MonthGridProps{
		Cells:     cells,
		Counts:    m.monthCounts(month),
		Today:     m.Today(),
		Focused:   m.CalendarState.Focused(),
		WeekStart: m.Config.WeekStartDay(),
		Width:     width,
		Compact:   compact,
	})
	grid = lipgloss.PlaceHorizontal(width, lipgloss.Center, grid)

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", grid)
	if pad := m.UiState.Height() - lipgloss.Height(body) - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatusBar())
}

// monthCounts returns the number of entries per day of month
func (m Model) monthCounts(month models.Date) map[models.Date]int {
	entries := m.App.WorkoutService.MonthEntries(month.Year, month.Month)
	counts := make(map[models.Date]int, len(entries))
	for date, list := range entries {
		counts[date] = len(list)
	}
	return counts
}

func (m Model) viewStatusBar() string {
	var notice string
	if n, ok := m.NotificationState.Last(); ok {
		notice = notifications.RenderInlineFromState(n)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width:  m.UiState.Width(),
		Notice: notice,
		Hint:   m.modeHint(),
	})
}

// modeHint returns the status bar key help for the current mode
func (m Model) modeHint() string {
	km := m.Config.KeyMappings
	switch m.UiState.Mode() {
	case state.DaySheetMode:
		return km.AddWorkout + " add • " + km.DeleteWorkout + " delete • esc close"
	case state.AddFormMode:
		return km.SaveForm + " save • tab notes • esc cancel"
	case state.HelpMode:
		return "esc close"
	default:
		return "←↓↑→ move • " + km.OpenDay + " open • " + km.ShowHelp + " help • " + km.Quit + " quit"
	}
}

func (m Model) daySheetLayer() *lipgloss.Layer {
	content := components.RenderDaySheet(components.DaySheetProps{
		Date:      m.DaySheetState.Date(),
		Entries:   m.SheetEntries(),
		Selected:  m.DaySheetState.Selected(),
		Now:       m.Now(),
		Width:     m.sheetWidth(),
		AddKey:    m.Config.KeyMappings.AddWorkout,
		DeleteKey: m.Config.KeyMappings.DeleteWorkout,
	})
	return layers.CreateBottomSheetLayer(content, m.UiState.Width(), m.UiState.Height(), layers.StatusBarReserved)
}

func (m Model) addFormLayer() *lipgloss.Layer {
	content := components.RenderAddForm(components.AddFormProps{
		Date:       m.FormState.Date(),
		Cursor:     m.FormState.Cursor(),
		Selected:   m.FormState.Selected(),
		TypesFocus: m.FormState.Focus() == state.FocusTypes,
		NotesView:  m.FormState.Notes.View(),
		CanSubmit:  m.FormState.CanSubmit(),
		Width:      m.formWidth(),
		SubmitKey:  m.Config.KeyMappings.SaveForm,
	})
	return layers.CreateBottomSheetLayer(content, m.UiState.Width(), m.UiState.Height(), layers.StatusBarReserved)
}
