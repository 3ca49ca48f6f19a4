// Package calendar derives the padded month grid shown by the UI and the CLI
package calendar

import (
	"time"

	"github.com/thenoetrevino/fitcal/internal/models"
)

// DayCell is one slot of the month grid.
// Blank cells pad the first and last week and carry no date.
type DayCell struct {
	Valid bool
	Day   int
	Date  models.Date
}

// IsToday reports whether the cell shows today.
// Today is supplied per render and never stored in the grid.
func (c DayCell) IsToday(today models.Date) bool {
	return c.Valid && c.Date == today
}

// DeriveMonthGrid returns the Sunday-first grid for ref's month
func DeriveMonthGrid(ref models.Date) []DayCell {
	return DeriveMonthGridFrom(ref, time.Sunday)
}

// DeriveMonthGridFrom returns the grid for ref's month with weekStart as the first column.
// Only the year and month of ref are used. The result always holds whole weeks.
func DeriveMonthGridFrom(ref models.Date, weekStart time.Weekday) []DayCell {
	first := ref.FirstOfMonth()
	daysInMonth := models.DaysInMonth(first.Year, first.Month)
	leading := LeadingBlanks(first.Weekday(), weekStart)

	weeks := (leading + daysInMonth + models.DaysPerWeek - 1) / models.DaysPerWeek
	cells := make([]DayCell, weeks*models.DaysPerWeek)

	for i := range cells {
		day := i - leading + 1
		if day < 1 || day > daysInMonth {
			continue
		}
		cells[i] = DayCell{
			Valid: true,
			Day:   day,
			Date:  models.Date{Year: first.Year, Month: first.Month, Day: day},
		}
	}
	return cells
}

// LeadingBlanks is the number of blank cells before a month whose day 1 falls on firstDay
func LeadingBlanks(firstDay, weekStart time.Weekday) int {
	return (int(firstDay) - int(weekStart) + models.DaysPerWeek) % models.DaysPerWeek
}

// Rows splits a grid into weeks
func Rows(cells []DayCell) [][]DayCell {
	rows := make([][]DayCell, 0, len(cells)/models.DaysPerWeek)
	for i := 0; i+models.DaysPerWeek <= len(cells); i += models.DaysPerWeek {
		rows = append(rows, cells[i:i+models.DaysPerWeek])
	}
	return rows
}

// IndexOf returns the grid index holding date, or -1 when the date is not in the grid
func IndexOf(cells []DayCell, date models.Date) int {
	for i, c := range cells {
		if c.Valid && c.Date == date {
			return i
		}
	}
	return -1
}

// WeekdayHeaders returns the short weekday names in column order
func WeekdayHeaders(weekStart time.Weekday) []string {
	headers := make([]string, models.DaysPerWeek)
	for i := range headers {
		wd := time.Weekday((int(weekStart) + i) % models.DaysPerWeek)
		headers[i] = wd.String()[:3]
	}
	return headers
}

// ParseWeekStart maps a config value to a weekday; anything but "monday" means Sunday
func ParseWeekStart(s string) time.Weekday {
	switch s {
	case "monday", "Monday", "mon":
		return time.Monday
	default:
		return time.Sunday
	}
}
