package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/fitcal/internal/models"
)

// DaySheetProps configures the day sheet listing a day's workouts
type DaySheetProps struct {
	Date      models.Date
	Entries   []models.Entry
	Selected  int
	Now       time.Time
	Width     int // outer width of the sheet
	AddKey    string
	DeleteKey string
}

// FormatSheetDate renders a date the way sheets title it: "Mar 15, 2024"
func FormatSheetDate(d models.Date) string {
	return d.Time().Format("Jan 2, 2006")
}

// RenderDaySheet renders the bottom sheet for one day
func RenderDaySheet(props DaySheetProps) string {
	inner := max(props.Width-6, 10) // border and padding

	var b strings.Builder
	b.WriteString(TitleStyle.Render(FormatSheetDate(props.Date)))
	b.WriteString("  ")
	b.WriteString(SubtleStyle.Render(props.Date.Weekday().String()))
	b.WriteString("\n\n")

	if len(props.Entries) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("No workouts logged"))
		b.WriteString("\n")
	} else {
		b.WriteString(SubtleStyle.Bold(true).Render("Workouts"))
		b.WriteString("\n")
		for i, e := range props.Entries {
			b.WriteString(RenderEntry(e, i == props.Selected, props.Now, inner))
			b.WriteString("\n")
		}
	}

	hints := []string{props.AddKey + " add"}
	if len(props.Entries) > 0 {
		hints = append(hints, DeleteHintStyle.Render(props.DeleteKey+" delete"), "↑/↓ select")
	}
	hints = append(hints, "esc close")
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(strings.Join(hints, "  •  ")))

	return SheetStyle.Width(props.Width).Render(b.String())
}

// RenderEntry renders one entry: its type and age, then its notes as markdown
func RenderEntry(e models.Entry, selected bool, now time.Time, width int) string {
	marker := "  "
	style := EntryStyle
	if selected {
		marker = "▸ "
		style = SelectedEntryStyle
	}

	header := marker + EntryTypeStyle.Render(e.Type.String())
	if !e.CreatedAt.IsZero() {
		header += "  " + SubtleStyle.Render(humanize.RelTime(e.CreatedAt, now, "ago", "from now"))
	}

	content := header
	if notes := RenderNotes(NotesProps{Notes: e.Notes, Width: width - 4}); notes != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, header, notes)
	}

	return style.Width(width).Render(content)
}
