package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/fitcal/internal/models"
	workoutservice "github.com/thenoetrevino/fitcal/internal/services/workout"
	"github.com/thenoetrevino/fitcal/internal/store"
)

// ParseDateFlag parses a --date value. Empty means today; "today" and
// "yesterday" are accepted as well as YYYY-MM-DD.
func ParseDateFlag(value string, today models.Date) (models.Date, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	return models.ParseDate(strings.TrimSpace(value))
}

// ParseMonthFlag parses a --month value. Empty means the month of today.
func ParseMonthFlag(value string, today models.Date) (models.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return today.FirstOfMonth(), nil
	}
	return models.ParseMonth(value)
}

// WorkoutTypeList returns the workout type names joined for help text
func WorkoutTypeList() string {
	types := models.WorkoutTypes()
	names := make([]string, len(types))
	for i, wt := range types {
		names[i] = wt.String()
	}
	return strings.Join(names, ", ")
}

// EntryOutput is the JSON shape of one workout entry
type EntryOutput struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
	Timestamp string `json:"timestamp"`
}

// GetID returns the entry id for quiet output
func (e EntryOutput) GetID() int64 {
	return e.ID
}

// NewEntryOutput converts an entry recorded on date
func NewEntryOutput(date models.Date, e models.Entry) EntryOutput {
	return EntryOutput{
		ID:        e.ID,
		Date:      date.String(),
		Type:      e.Type.String(),
		Notes:     e.Notes,
		Timestamp: store.FormatTimestamp(e.CreatedAt),
	}
}

// ClassifyError maps a service error to an exit code, error code and suggestion
func ClassifyError(err error) (exitCode int, code string, suggestion string) {
	switch {
	case errors.Is(err, models.ErrWorkoutTypeRequired):
		return ExitValidation, "TYPE_REQUIRED", fmt.Sprintf("Pass --type with one of: %s", WorkoutTypeList())
	case errors.Is(err, models.ErrInvalidWorkoutType):
		return ExitValidation, "INVALID_TYPE", fmt.Sprintf("Valid types: %s", WorkoutTypeList())
	case errors.Is(err, workoutservice.ErrNotesTooLong):
		return ExitValidation, "NOTES_TOO_LONG", fmt.Sprintf("Keep notes under %d characters", workoutservice.MaxNotesLength)
	case errors.Is(err, models.ErrInvalidDate):
		return ExitDataErr, "INVALID_DATE", "Use the YYYY-MM-DD format, e.g. 2024-03-15"
	case errors.Is(err, models.ErrInvalidMonth):
		return ExitDataErr, "INVALID_MONTH", "Use the YYYY-MM format, e.g. 2024-03"
	case errors.Is(err, models.ErrEntryNotFound):
		return ExitNotFound, "ENTRY_NOT_FOUND", "Run 'fitcal list' to see entry ids"
	case errors.Is(err, workoutservice.ErrPersistFailed):
		return ExitError, "SAVE_ERROR", "Check that the data directory is writable"
	default:
		return ExitError, "ERROR", ""
	}
}

// FailWith reports err with the exit code and suggestion ClassifyError picks
func (f *OutputFormatter) FailWith(err error) error {
	exitCode, code, suggestion := ClassifyError(err)
	return f.Fail(exitCode, code, err, suggestion)
}

// Now is the clock used by commands. Tests replace it.
var Now = time.Now
