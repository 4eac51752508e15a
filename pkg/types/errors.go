package types

import "errors"

var (
	// ErrInvalidFormat is returned when a display time cannot be decomposed into hour and minute digits
	ErrInvalidFormat = errors.New("types: invalid time format")

	// ErrOutOfRange is returned when a minute-of-day value is outside [0, 1439]
	ErrOutOfRange = errors.New("types: minute of day out of range")
)
