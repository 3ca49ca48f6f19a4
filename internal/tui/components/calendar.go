package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/fitcal/internal/calendar"
	"github.com/thenoetrevino/fitcal/internal/models"
)

// DayCellProps configures one day cell of the month grid
type DayCellProps struct {
	Cell    calendar.DayCell
	Count   int // entries recorded on the day
	Today   models.Date
	Focused bool
	Width   int // inner width, borders excluded
	Compact bool
}

// RenderDayIndicator returns up to MaxIndicatorDots dots for count entries
func RenderDayIndicator(count int) string {
	n := min(max(count, 0), models.MaxIndicatorDots)
	return strings.Repeat("•", n)
}

// RenderDayCell renders a grid cell: the day number over its workout dots.
// Compact cells drop the border and fit on one line.
func RenderDayCell(props DayCellProps) string {
	if !props.Cell.Valid {
		blank := strings.Repeat(" ", props.Width)
		if props.Compact {
			return blank
		}
		return BlankCellStyle.Width(props.Width + 2).Render(blank + "\n" + blank)
	}

	isToday := props.Cell.IsToday(props.Today)

	number := DayNumberStyle.Render(fmt.Sprintf("%d", props.Cell.Day))
	if isToday {
		number = TodayNumberStyle.Render(fmt.Sprintf("%d", props.Cell.Day))
	}
	dots := DotStyle.Render(RenderDayIndicator(props.Count))

	if props.Compact {
		content := padLeft(number, 2) + dots
		style := lipgloss.NewStyle().Width(props.Width)
		if props.Focused {
			style = style.Reverse(true)
		}
		return style.Render(content)
	}

	style := CellStyle
	switch {
	case props.Focused:
		style = SelectedCellStyle
	case isToday:
		style = TodayCellStyle
	}

	// lipgloss v2 widths include the border
	return style.Width(props.Width + 2).Render(number + "\n" + dots)
}

// MonthGridProps configures the month grid
type MonthGridProps struct {
	Cells     []calendar.DayCell
	Counts    map[models.Date]int
	Today     models.Date
	Focused   models.Date
	WeekStart time.Weekday
	Width     int // total width available
	Compact   bool
}

// MinFullCellWidth is the narrowest inner width of a bordered day cell
const MinFullCellWidth = 5

// CellWidth returns the inner cell width that fits seven cells in width
func CellWidth(width int, compact bool) int {
	chrome := 2 // left and right border
	if compact {
		chrome = 1 // one space between compact cells
	}
	return max(width/models.DaysPerWeek-chrome, MinFullCellWidth)
}

// RenderWeekdayHeader renders the weekday names centered over the cells
func RenderWeekdayHeader(weekStart time.Weekday, cellWidth int, compact bool) string {
	outer := cellWidth + 2
	if compact {
		outer = cellWidth + 1
	}
	headers := calendar.WeekdayHeaders(weekStart)
	parts := make([]string, len(headers))
	for i, h := range headers {
		parts[i] = WeekdayStyle.Width(outer).Render(h)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderMonthGrid renders the weekday header and all weeks of the month
func RenderMonthGrid(props MonthGridProps) string {
	cellWidth := CellWidth(props.Width, props.Compact)

	rows := []string{RenderWeekdayHeader(props.WeekStart, cellWidth, props.Compact)}
	for _, week := range calendar.Rows(props.Cells) {
		cells := make([]string, len(week))
		for i, cell := range week {
			rendered := RenderDayCell(DayCellProps{
				Cell:    cell,
				Count:   props.Counts[cell.Date],
				Today:   props.Today,
				Focused: cell.Valid && cell.Date == props.Focused,
				Width:   cellWidth,
				Compact: props.Compact,
			})
			if props.Compact {
				rendered += " "
			}
			cells[i] = rendered
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// MonthHeaderProps configures the month title bar
type MonthHeaderProps struct {
	Title   string // e.g. "March 2024"
	PrevKey string
	NextKey string
	Width   int
}

// RenderMonthHeader renders "‹ [   March 2024   ] ›" spread across width
func RenderMonthHeader(props MonthHeaderProps) string {
	left := SubtleStyle.Render("‹ " + props.PrevKey)
	right := SubtleStyle.Render(props.NextKey + " ›")
	title := TitleStyle.Render(props.Title)

	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right)-lipgloss.Width(title), 2)
	leftGap := strings.Repeat(" ", gap/2)
	rightGap := strings.Repeat(" ", gap-gap/2)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, leftGap, title, rightGap, right)
}

// padLeft right-aligns s in w cells, measuring styled text by its visible width
func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}
