package theme

import "github.com/thenoetrevino/fitcal/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Delete         string
	Today          string
	Dot            string
	CellBorder     string
	CellBg         string
	BlankBg        string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Delete = colors.Delete
	Today = colors.Today
	Dot = colors.Dot
	CellBorder = colors.CellBorder
	CellBg = colors.CellBackground
	BlankBg = colors.BlankBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
