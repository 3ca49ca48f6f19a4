package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	CalendarMode Mode = iota // Default month grid navigation
	DaySheetMode             // Bottom sheet listing the selected day's workouts
	AddFormMode              // Recording a new workout on the selected day
	HelpMode                 // Displaying help screen
)

// String returns a short name for the mode, used in logs
func (m Mode) String() string {
	switch m {
	case CalendarMode:
		return "calendar"
	case DaySheetMode:
		return "day-sheet"
	case AddFormMode:
		return "add-form"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes terminal dimensions, the current interaction mode
// and the mode help returns to.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// returnMode is restored when the help overlay closes
	returnMode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: CalendarMode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for the calendar grid.
// This is terminal height minus the month header and status bar, at least 8.
func (s *UIState) ContentHeight() int {
	const headerHeight = 3    // month title + weekday header + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 8)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// OpenHelp switches to HelpMode and remembers the current mode
func (s *UIState) OpenHelp() {
	if s.mode == HelpMode {
		return
	}
	s.returnMode = s.mode
	s.mode = HelpMode
}

// CloseHelp restores the mode active before OpenHelp
func (s *UIState) CloseHelp() {
	if s.mode != HelpMode {
		return
	}
	s.mode = s.returnMode
}
