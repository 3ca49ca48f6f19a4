package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent:     "#FFFFFF",
		Background: "#121212",

		// Semantic
		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		// Calendar
		Today:           "#FFFFFF",
		Dot:             "#D0D0D0",
		CellBorder:      "#585858",
		CellBackground:  "#1C1C1C",
		BlankBackground: "#121212",
		SelectedBorder:  "#FFFFFF",
		SelectedBg:      "#3A3A3A",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
