package state

import "github.com/thenoetrevino/fitcal/internal/models"

// DaySheetState tracks the open day sheet: which day and which entry is selected.
type DaySheetState struct {
	date     models.Date
	selected int
}

// NewDaySheetState creates a closed day sheet.
func NewDaySheetState() *DaySheetState {
	return &DaySheetState{}
}

// Open shows date with the first entry selected.
func (s *DaySheetState) Open(date models.Date) {
	s.date = date
	s.selected = 0
}

// Date returns the day shown in the sheet.
func (s *DaySheetState) Date() models.Date {
	return s.date
}

// Selected returns the index of the selected entry.
func (s *DaySheetState) Selected() int {
	return s.selected
}

// Move shifts the selection by delta within count entries.
func (s *DaySheetState) Move(delta, count int) {
	if count == 0 {
		s.selected = 0
		return
	}
	s.selected = min(max(s.selected+delta, 0), count-1)
}

// Clamp keeps the selection inside count entries, e.g. after a delete.
func (s *DaySheetState) Clamp(count int) {
	s.Move(0, count)
}
