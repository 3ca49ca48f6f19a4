package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the month header, selections, titles)
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // add form and submit button
	Delete string `yaml:"delete"` // delete controls

	// Calendar colors
	Today           string `yaml:"today"`            // ring and number of today's cell
	Dot             string `yaml:"dot"`              // workout indicator dots
	CellBorder      string `yaml:"cell_border"`      // valid day cells
	CellBackground  string `yaml:"cell_background"`  // valid day cells
	BlankBackground string `yaml:"blank_background"` // padding cells
	SelectedBorder  string `yaml:"selected_border"`
	SelectedBg      string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color value by pointer so defaults and merges stay in one place
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background,
		&c.Create, &c.Delete,
		&c.Today, &c.Dot, &c.CellBorder, &c.CellBackground, &c.BlankBackground,
		&c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	base := preset.fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		// A different preset resets the base before overrides apply
		*c = *GetPreset(other.Preset)
	}
	src := other.fields()
	for i, f := range c.fields() {
		if *src[i] != "" {
			*f = *src[i]
		}
	}
}
