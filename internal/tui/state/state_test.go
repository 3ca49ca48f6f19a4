package state

import (
	"testing"
	"time"

	"github.com/thenoetrevino/fitcal/internal/models"
)

func d(year int, month time.Month, day int) models.Date {
	return models.Date{Year: year, Month: month, Day: day}
}

func TestCalendarState_ShiftMonthClampsDay(t *testing.T) {
	tests := []struct {
		name  string
		start models.Date
		shift int
		want  models.Date
	}{
		{"into leap february", d(2024, time.January, 31), 1, d(2024, time.February, 29)},
		{"into short february", d(2023, time.January, 30), 1, d(2023, time.February, 28)},
		{"back across the year", d(2024, time.January, 15), -1, d(2023, time.December, 15)},
		{"thirty day month", d(2024, time.March, 31), 1, d(2024, time.April, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCalendarState(tt.start)
			s.ShiftMonth(tt.shift)
			if got := s.Focused(); got != tt.want {
				t.Errorf("Focused = %v, want %v", got, tt.want)
			}
			if got := s.ViewMonth(); got != tt.want.FirstOfMonth() {
				t.Errorf("ViewMonth = %v, want %v", got, tt.want.FirstOfMonth())
			}
		})
	}
}

func TestCalendarState_MonthTitle(t *testing.T) {
	s := NewCalendarState(d(2024, time.March, 15))
	if got := s.MonthTitle(); got != "March 2024" {
		t.Errorf("MonthTitle = %q, want %q", got, "March 2024")
	}
}

func TestFormState(t *testing.T) {
	s := NewFormState()
	s.Open(d(2024, time.March, 15))

	if s.CanSubmit() {
		t.Error("a fresh form must not be submittable")
	}
	if s.Notes.Placeholder != NotesPlaceholder {
		t.Errorf("Placeholder = %q, want %q", s.Notes.Placeholder, NotesPlaceholder)
	}

	if s.SelectIndex(6) {
		t.Error("SelectIndex(6) should be out of range")
	}
	if !s.SelectIndex(5) || s.Selected() != models.WorkoutRestDay {
		t.Errorf("Selected = %q, want Rest Day", s.Selected())
	}

	s.MoveCursor(1)
	if s.Cursor() != 0 {
		t.Errorf("Cursor = %d, want wrap to 0", s.Cursor())
	}

	s.ToggleFocus()
	if s.Focus() != FocusNotes {
		t.Error("ToggleFocus should move to the notes")
	}

	s.Reset()
	if s.CanSubmit() || s.Focus() != FocusTypes || !s.Date().IsZero() {
		t.Error("Reset should clear every field")
	}
}

func TestDaySheetState_Move(t *testing.T) {
	s := NewDaySheetState()
	s.Open(d(2024, time.March, 15))

	s.Move(5, 3)
	if s.Selected() != 2 {
		t.Errorf("Selected = %d, want 2", s.Selected())
	}
	s.Clamp(1)
	if s.Selected() != 0 {
		t.Errorf("Selected = %d, want 0 after clamp", s.Selected())
	}
	s.Move(1, 0)
	if s.Selected() != 0 {
		t.Errorf("Selected = %d, want 0 for no entries", s.Selected())
	}
}

func TestUIState_Help(t *testing.T) {
	s := NewUIState()
	s.SetMode(AddFormMode)

	s.OpenHelp()
	s.OpenHelp()
	if s.Mode() != HelpMode {
		t.Fatalf("Mode = %v, want help", s.Mode())
	}
	s.CloseHelp()
	if s.Mode() != AddFormMode {
		t.Errorf("Mode = %v, want add-form restored", s.Mode())
	}
}

func TestNotificationState_GetLayers(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "hidden")
	s.Add(LevelError, "shown")

	if layers := s.GetLayers(func(n Notification) string { return n.Message }); len(layers) != 0 {
		t.Errorf("got %d layers before the window size is known, want 0", len(layers))
	}

	s.SetWindowSize(80, 24)
	layers := s.GetLayers(func(n Notification) string {
		if n.Level != LevelError {
			return ""
		}
		return n.Message
	})
	if len(layers) != 1 {
		t.Errorf("got %d layers, want 1", len(layers))
	}

	last, ok := s.Last()
	if !ok || last.Message != "shown" {
		t.Errorf("Last = %+v, want the error", last)
	}
	s.Clear()
	if s.HasAny() {
		t.Error("Clear should drop every notification")
	}
}
