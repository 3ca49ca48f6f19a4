package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/fitcal/internal/config"
)

type helpSection struct {
	title string
	keys  [][2]string
}

// RenderHelp renders the key reference for the configured key mappings
func RenderHelp(km config.KeyMappings, width int) string {
	sections := []helpSection{
		{"Calendar", [][2]string{
			{km.PrevDay + "/" + km.NextDay + " ←/→", "previous / next day"},
			{km.PrevWeek + "/" + km.NextWeek + " ↑/↓", "previous / next week"},
			{km.PrevMonth + "/" + km.NextMonth + " </>", "previous / next month"},
			{km.GoToday, "jump to today"},
			{km.OpenDay, "open the day"},
		}},
		{"Day sheet", [][2]string{
			{km.AddWorkout, "add a workout"},
			{km.DeleteWorkout, "delete the selected workout"},
			{"↑/↓", "select a workout"},
			{"esc", "close"},
		}},
		{"Add form", [][2]string{
			{"1-6", "choose a type"},
			{"←/→ space", "move and pick a type"},
			{"tab", "switch between types and notes"},
			{km.SaveForm, "add the workout"},
			{"esc", "cancel"},
		}},
		{"General", [][2]string{
			{km.ShowHelp, "toggle this help"},
			{km.Quit + " / ctrl+c", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			fmt.Fprintf(&b, "  %-16s %s\n", k[0], k[1])
		}
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("press " + km.ShowHelp + " or esc to close"))

	return HelpBoxStyle.Width(width).Render(b.String())
}
