package attendance

import "errors"

// Data-integrity errors. The engine fails the single day's calculation with a
// precise field-level wrap instead of guessing or clamping bad durations.
var (
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrBreakEndBeforeStart   = errors.New("break end is before break start")
	ErrTooManyBreaks         = errors.New("break count exceeds max breaks per day")
	ErrCheckOutBeforeCheckIn = errors.New("check-out is before check-in and no overnight shift is inferable")
	ErrIncompleteDay         = errors.New("day is missing check-in or check-out")
)
