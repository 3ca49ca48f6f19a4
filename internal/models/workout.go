package models

import (
	"fmt"
	"strings"
	"time"
)

// WorkoutType is one of the fixed workout categories.
// The string value is the label stored on disk and shown in the UI.
type WorkoutType string

// WorkoutType constants
const (
	WorkoutStrength    WorkoutType = "Strength"
	WorkoutCardio      WorkoutType = "Cardio"
	WorkoutYoga        WorkoutType = "Yoga"
	WorkoutSports      WorkoutType = "Sports"
	WorkoutFlexibility WorkoutType = "Flexibility"
	WorkoutRestDay     WorkoutType = "Rest Day"
)

var workoutTypes = []WorkoutType{
	WorkoutStrength,
	WorkoutCardio,
	WorkoutYoga,
	WorkoutSports,
	WorkoutFlexibility,
	WorkoutRestDay,
}

// WorkoutTypes returns the enumeration in display order
func WorkoutTypes() []WorkoutType {
	out := make([]WorkoutType, len(workoutTypes))
	copy(out, workoutTypes)
	return out
}

// Valid reports whether t is a member of the enumeration
func (t WorkoutType) Valid() bool {
	for _, wt := range workoutTypes {
		if t == wt {
			return true
		}
	}
	return false
}

// String returns the display label
func (t WorkoutType) String() string {
	return string(t)
}

// ParseWorkoutType maps user input to a WorkoutType.
// Matching ignores case, and spaces, dashes and underscores are interchangeable.
func ParseWorkoutType(s string) (WorkoutType, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrWorkoutTypeRequired
	}
	want := normalizeTypeName(s)
	for _, wt := range workoutTypes {
		if normalizeTypeName(string(wt)) == want {
			return wt, nil
		}
	}
	return "", fmt.Errorf("%w %q (must be one of: %s)", ErrInvalidWorkoutType, s, typeList())
}

func normalizeTypeName(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

func typeList() string {
	names := make([]string, len(workoutTypes))
	for i, wt := range workoutTypes {
		names[i] = string(wt)
	}
	return strings.Join(names, ", ")
}

// Entry is a single recorded workout
type Entry struct {
	ID        int64
	Type      WorkoutType
	Notes     string
	CreatedAt time.Time
}

// GetID returns the entry id, used by quiet CLI output
func (e Entry) GetID() int64 {
	return e.ID
}
