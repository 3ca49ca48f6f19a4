// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/fitcal/internal/config"
	"github.com/thenoetrevino/fitcal/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the appearance of titles (month header, sheet date)
	TitleStyle lipgloss.Style

	// SubtleStyle renders muted text such as hints and ages
	SubtleStyle lipgloss.Style

	// WeekdayStyle renders the weekday column headers
	WeekdayStyle lipgloss.Style

	// CellStyle defines a valid day cell
	CellStyle lipgloss.Style

	// SelectedCellStyle defines the day cell under the cursor
	SelectedCellStyle lipgloss.Style

	// TodayCellStyle defines today's cell when it is not under the cursor
	TodayCellStyle lipgloss.Style

	// BlankCellStyle defines padding cells outside the month
	BlankCellStyle lipgloss.Style

	// DayNumberStyle and TodayNumberStyle render the day number inside a cell
	DayNumberStyle   lipgloss.Style
	TodayNumberStyle lipgloss.Style

	// DotStyle renders workout indicator dots
	DotStyle lipgloss.Style

	// SheetStyle defines the day sheet (accent border)
	SheetStyle lipgloss.Style

	// FormBoxStyle defines the add form sheet (green border)
	FormBoxStyle lipgloss.Style

	// HelpBoxStyle defines the help overlay
	HelpBoxStyle lipgloss.Style

	// EntryStyle and SelectedEntryStyle render entries in the day sheet
	EntryStyle         lipgloss.Style
	SelectedEntryStyle lipgloss.Style

	// EntryTypeStyle renders the workout type of an entry
	EntryTypeStyle lipgloss.Style

	// TypeButtonStyle, TypeButtonCursorStyle and TypeButtonSelectedStyle
	// render the single-select type buttons of the add form
	TypeButtonStyle         lipgloss.Style
	TypeButtonCursorStyle   lipgloss.Style
	TypeButtonSelectedStyle lipgloss.Style

	// SubmitStyle and SubmitDisabledStyle render the add button
	SubmitStyle         lipgloss.Style
	SubmitDisabledStyle lipgloss.Style

	// DeleteHintStyle renders the delete key hint
	DeleteHintStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// sheetBorder has tee corners at the bottom so a sheet meets the status bar line
var sheetBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┴",
	BottomRight: "┴",
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	WeekdayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Subtle)).
		Align(lipgloss.Center)

	CellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CellBorder)).
		Background(lipgloss.Color(colors.CellBackground)).
		Align(lipgloss.Center)

	SelectedCellStyle = CellStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(colors.SelectedBorder)).
		Background(lipgloss.Color(colors.SelectedBg))

	TodayCellStyle = CellStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(colors.Today))

	BlankCellStyle = lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Background(lipgloss.Color(colors.BlankBackground))

	DayNumberStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Normal))

	TodayNumberStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Today))

	DotStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Dot))

	SheetStyle = lipgloss.NewStyle().
		Border(sheetBorder).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Background(lipgloss.Color(colors.Background)).
		Padding(0, 2)

	FormBoxStyle = SheetStyle.
		BorderForeground(lipgloss.Color(colors.Create))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Title)).
		Padding(1, 2)

	EntryStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(colors.CellBorder)).
		PaddingLeft(1)

	SelectedEntryStyle = EntryStyle.
		BorderForeground(lipgloss.Color(colors.SelectedBorder)).
		Background(lipgloss.Color(colors.SelectedBg))

	EntryTypeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	TypeButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		Background(lipgloss.Color(colors.CellBackground)).
		Padding(0, 1)

	TypeButtonCursorStyle = TypeButtonStyle.
		Underline(true).
		Foreground(lipgloss.Color(colors.SelectedBorder))

	TypeButtonSelectedStyle = TypeButtonStyle.
		Bold(true).
		Foreground(lipgloss.Color(colors.Normal)).
		Background(lipgloss.Color(colors.Today))

	SubmitStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Background)).
		Background(lipgloss.Color(colors.Create)).
		Padding(0, 2)

	SubmitDisabledStyle = lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color(colors.Subtle)).
		Background(lipgloss.Color(colors.CellBackground)).
		Padding(0, 2)

	DeleteHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Delete))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))
}
