package state

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/fitcal/internal/models"
)

// NotesPlaceholder is shown in the empty notes field
const NotesPlaceholder = "Duration, exercises, sets..."

// FormFocus names the part of the add form receiving keys
type FormFocus int

const (
	FocusTypes FormFocus = iota // type buttons
	FocusNotes                  // notes textarea
)

// FormState holds the add-workout form fields.
// Nothing here is persisted; Reset clears it when the form closes.
type FormState struct {
	// date is the day the workout will be recorded on
	date models.Date

	// cursor is the index of the highlighted type button
	cursor int

	// selected is the chosen type, empty until the user picks one
	selected models.WorkoutType

	focus FormFocus

	// Notes is the notes textarea
	Notes textarea.Model
}

// NewFormState creates an empty form.
func NewFormState() *FormState {
	ta := textarea.New()
	ta.Placeholder = NotesPlaceholder
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.SetWidth(40)

	return &FormState{Notes: ta}
}

// Open prepares the form for date with every field cleared.
func (s *FormState) Open(date models.Date) {
	s.Reset()
	s.date = date
}

// Reset clears all fields.
func (s *FormState) Reset() {
	s.date = models.Date{}
	s.cursor = 0
	s.selected = ""
	s.focus = FocusTypes
	s.Notes.Reset()
	s.Notes.Blur()
}

// Date returns the day the form records on.
func (s *FormState) Date() models.Date {
	return s.date
}

// Cursor returns the index of the highlighted type button.
func (s *FormState) Cursor() int {
	return s.cursor
}

// MoveCursor moves the highlighted type button by delta, wrapping around.
func (s *FormState) MoveCursor(delta int) {
	n := len(models.WorkoutTypes())
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// SelectCursor chooses the highlighted type.
func (s *FormState) SelectCursor() {
	s.selected = models.WorkoutTypes()[s.cursor]
}

// SelectIndex chooses the type at index i (0-based) and highlights it.
// Out of range indexes are ignored.
func (s *FormState) SelectIndex(i int) bool {
	types := models.WorkoutTypes()
	if i < 0 || i >= len(types) {
		return false
	}
	s.cursor = i
	s.selected = types[i]
	return true
}

// Selected returns the chosen type, empty if none.
func (s *FormState) Selected() models.WorkoutType {
	return s.selected
}

// CanSubmit reports whether a type has been chosen.
func (s *FormState) CanSubmit() bool {
	return s.selected != ""
}

// Focus returns which part of the form receives keys.
func (s *FormState) Focus() FormFocus {
	return s.focus
}

// ToggleFocus switches between the type buttons and the notes field.
func (s *FormState) ToggleFocus() tea.Cmd {
	if s.focus == FocusTypes {
		s.focus = FocusNotes
		return s.Notes.Focus()
	}
	s.focus = FocusTypes
	s.Notes.Blur()
	return nil
}

// NotesValue returns the typed notes.
func (s *FormState) NotesValue() string {
	return s.Notes.Value()
}
