package workout

import "errors"

// Workout service errors
var (
	// ErrPersistFailed wraps storage write failures. The in-memory change is kept.
	ErrPersistFailed = errors.New("failed to save workouts")

	// ErrNotesTooLong indicates notes beyond MaxNotesLength
	ErrNotesTooLong = errors.New("workout notes cannot exceed 5000 characters")
)

// MaxNotesLength bounds the free-text notes of an entry
const MaxNotesLength = 5000
