package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/fitcal/internal/config"
	"github.com/thenoetrevino/fitcal/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Type:", "Logged:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like the day heading in list output

	// Calendar styles
	TodayStyle lipgloss.Style
	DotStyle   lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	TodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Today))

	DotStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Dot))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// RenderTypeChip renders a workout type as "[Cardio]"
func RenderTypeChip(wt models.WorkoutType) string {
	return LabelStyle.Render("[" + wt.String() + "]")
}

// RenderEntryLine renders a one-line summary of an entry.
// Format: "#1710500000000 [Cardio] 5k run"
func RenderEntryLine(e models.Entry) string {
	line := fmt.Sprintf("%s %s", SubtitleStyle.Render(fmt.Sprintf("#%d", e.ID)), RenderTypeChip(e.Type))
	if e.Notes != "" {
		line += " " + ValueStyle.Render(firstLine(e.Notes))
	}
	return line
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

func firstLine(s string) string {
	if head, _, found := strings.Cut(s, "\n"); found {
		return head + " …"
	}
	return s
}
