package models

// ============================================================================
// STORAGE CONSTANTS
// ============================================================================

// DefaultStorageKey is the key the whole workout snapshot is stored under
const DefaultStorageKey = "fitnessWorkouts"

// ============================================================================
// DISPLAY CONSTANTS
// ============================================================================

// MaxIndicatorDots is the maximum number of entry dots drawn in a day cell
const MaxIndicatorDots = 3

// DaysPerWeek is the width of the month grid
const DaysPerWeek = 7
