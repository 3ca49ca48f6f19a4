package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/fitcal/internal/models"
)

// AddFormProps configures the add-workout sheet
type AddFormProps struct {
	Date       models.Date
	Cursor     int                // highlighted type button
	Selected   models.WorkoutType // chosen type, empty if none
	TypesFocus bool               // true when keys go to the type buttons
	NotesView  string             // rendered notes textarea
	CanSubmit  bool
	Width      int
	SubmitKey  string
}

// SubmitLabel is the text of the submit button
const SubmitLabel = "Add Workout"

// RenderTypeButtons renders the six types as numbered buttons, two rows of three
func RenderTypeButtons(cursor int, selected models.WorkoutType, focused bool) string {
	types := models.WorkoutTypes()
	buttons := make([]string, len(types))
	for i, wt := range types {
		label := fmt.Sprintf("%d %s", i+1, wt)
		style := TypeButtonStyle
		switch {
		case wt == selected:
			style = TypeButtonSelectedStyle
		case focused && i == cursor:
			style = TypeButtonCursorStyle
		}
		buttons[i] = style.Width(16).Render(label)
	}

	const perRow = 3
	var rows []string
	for i := 0; i < len(buttons); i += perRow {
		end := min(i+perRow, len(buttons))
		row := make([]string, 0, (end-i)*2)
		for j, b := range buttons[i:end] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, b)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderSubmitButton renders the submit button, dimmed when disabled
func RenderSubmitButton(enabled bool, key string) string {
	if !enabled {
		return SubmitDisabledStyle.Render(SubmitLabel) + " " + SubtleStyle.Render("choose a type first")
	}
	return SubmitStyle.Render(SubmitLabel) + " " + SubtleStyle.Render(key)
}

// RenderAddForm renders the add-workout sheet
func RenderAddForm(props AddFormProps) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("New workout · " + FormatSheetDate(props.Date)))
	b.WriteString("\n\n")

	b.WriteString(SubtleStyle.Bold(true).Render("Workout Type"))
	b.WriteString("\n")
	b.WriteString(RenderTypeButtons(props.Cursor, props.Selected, props.TypesFocus))
	b.WriteString("\n\n")

	b.WriteString(SubtleStyle.Bold(true).Render("Notes (Optional)"))
	b.WriteString("\n")
	b.WriteString(props.NotesView)
	b.WriteString("\n\n")

	b.WriteString(RenderSubmitButton(props.CanSubmit, props.SubmitKey))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("1-6 type  •  ←/→ space pick  •  tab notes  •  esc cancel"))

	return FormBoxStyle.Width(props.Width).Render(b.String())
}
