package state

import (
	"fmt"

	"github.com/thenoetrevino/fitcal/internal/models"
)

// CalendarState tracks the visible month and the focused day.
// The focused day always lies inside the visible month.
type CalendarState struct {
	// viewMonth is day 1 of the month on screen
	viewMonth models.Date

	// focused is the day under the cursor
	focused models.Date
}

// NewCalendarState creates a CalendarState showing today's month with today focused.
func NewCalendarState(today models.Date) *CalendarState {
	return &CalendarState{
		viewMonth: today.FirstOfMonth(),
		focused:   today,
	}
}

// ViewMonth returns day 1 of the visible month.
func (s *CalendarState) ViewMonth() models.Date {
	return s.viewMonth
}

// Focused returns the day under the cursor.
func (s *CalendarState) Focused() models.Date {
	return s.focused
}

// Focus moves the cursor to date and shows its month.
func (s *CalendarState) Focus(date models.Date) {
	s.focused = date
	s.viewMonth = date.FirstOfMonth()
}

// MoveDays moves the cursor by n days, following it into adjacent months.
func (s *CalendarState) MoveDays(n int) {
	s.Focus(s.focused.AddDays(n))
}

// ShiftMonth shows the month n months away. The cursor keeps its day of
// month, clamped to the length of the new month.
func (s *CalendarState) ShiftMonth(n int) {
	target := s.viewMonth.AddMonths(n)
	day := min(s.focused.Day, models.DaysInMonth(target.Year, target.Month))
	s.Focus(models.Date{Year: target.Year, Month: target.Month, Day: day})
}

// MonthTitle returns the visible month as "March 2024"
func (s *CalendarState) MonthTitle() string {
	return fmt.Sprintf("%s %d", s.viewMonth.Month, s.viewMonth.Year)
}
