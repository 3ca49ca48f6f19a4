package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	// Notice is an already rendered inline notification, empty if none
	Notice string
	// Hint is the right-hand key help for the current mode
	Hint string
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: the last notification, or "fitcal - workout calendar".
// Right side: the key hint for the current mode.
func RenderStatusBar(props StatusBarProps) string {
	left := props.Notice
	if left == "" {
		left = StatusBarStyle.Render("fitcal - workout calendar")
	}
	right := StatusBarStyle.Render(props.Hint)

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
