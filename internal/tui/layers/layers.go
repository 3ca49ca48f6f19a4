// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateBottomSheetLayer creates a layer centered horizontally and resting on
// the bottom edge of the screen, above reservedBottom rows (the status bar).
// Returns nil if content is empty.
func CreateBottomSheetLayer(content string, screenWidth int, screenHeight int, reservedBottom int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max(screenHeight-reservedBottom-lipgloss.Height(content), 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// SheetWidth returns the width of a bottom sheet for the screen width:
// the whole screen minus a margin, kept between minWidth and maxWidth.
func SheetWidth(screenWidth, minWidth, maxWidth int) int {
	return min(max(screenWidth-SheetMargin, minWidth), maxWidth)
}
