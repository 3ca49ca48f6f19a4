package models

import "errors"

// Domain-specific errors for workout entries and date keys
var (
	// ErrInvalidDate indicates a date key that is not a real YYYY-MM-DD day
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidMonth indicates a month that is not YYYY-MM
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrWorkoutTypeRequired indicates an add attempt without a workout type
	ErrWorkoutTypeRequired = errors.New("workout type is required")

	// ErrInvalidWorkoutType indicates a type outside the fixed enumeration
	ErrInvalidWorkoutType = errors.New("unknown workout type")

	// ErrEntryNotFound indicates no entry with the given id exists on the date
	ErrEntryNotFound = errors.New("workout entry not found")
)
