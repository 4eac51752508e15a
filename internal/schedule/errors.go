package schedule

import "errors"

var (
	// ErrInvalidInterval возвращается, когда шаг слотов не положительный
	ErrInvalidInterval = errors.New("schedule: interval must be positive")
)
