package colors

// Default returns the default color scheme (blue to purple, dark cells)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent:     "#7C3AED",
		Background: "#111827",

		// Semantic
		Create: "#22C55E",
		Delete: "#F87171",

		// Calendar
		Today:           "#3B82F6",
		Dot:             "#22C55E",
		CellBorder:      "#374151",
		CellBackground:  "#1F2937",
		BlankBackground: "#111827",
		SelectedBorder:  "#A78BFA",
		SelectedBg:      "#374151",

		// Text
		Title:  "#60A5FA",
		Subtle: "#6B7280",
		Normal: "#D1D5DB",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
