package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/fitcal/internal/app"
	"github.com/thenoetrevino/fitcal/internal/config"
	"github.com/thenoetrevino/fitcal/internal/models"
	"github.com/thenoetrevino/fitcal/internal/tui/components"
	"github.com/thenoetrevino/fitcal/internal/tui/state"
)

// Model represents the application state for the TUI.
// Everything in it is view state; workouts live in the App's service.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	CalendarState     *state.CalendarState
	DaySheetState     *state.DaySheetState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	now func() time.Time
}

// Option configures a Model
type Option func(*Model)

// WithClock replaces time.Now for "today" and entry ages
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// InitialModel creates the TUI model over an App whose workouts are already loaded
func InitialModel(ctx context.Context, application *app.App, opts ...Option) Model {
	m := Model{
		Ctx:               ctx,
		App:               application,
		Config:            application.Config,
		UiState:           state.NewUIState(),
		DaySheetState:     state.NewDaySheetState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.CalendarState = state.NewCalendarState(m.Today())

	components.InitStyles(m.Config.ColorScheme)

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Today returns the current calendar day
func (m Model) Today() models.Date {
	return models.DateOf(m.now())
}

// Now returns the current time from the model clock
func (m Model) Now() time.Time {
	return m.now()
}

// SheetEntries returns the entries of the day shown in the day sheet
func (m Model) SheetEntries() []models.Entry {
	return m.App.WorkoutService.EntriesFor(m.DaySheetState.Date())
}
