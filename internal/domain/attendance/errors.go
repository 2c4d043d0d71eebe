package attendance

import "errors"

// Attendance domain errors
var (
	// Clock action errors
	ErrInvalidAction         = errors.New("invalid clock action")
	ErrInvalidTransition     = errors.New("clock action not allowed in the current state of the day")
	ErrActionAlreadyRecorded = errors.New("clock action already recorded today")

	// General errors
	ErrDayNotFound = errors.New("attendance record not found")
)
