package draft

import "errors"

var (
	// ErrSlotUnavailable is returned when the chosen time is not in the resolved free set
	ErrSlotUnavailable = errors.New("draft: slot is not available")

	// ErrTimeout is returned when a backend call exceeded the per-call budget
	ErrTimeout = errors.New("draft: backend call timed out")

	// ErrSubmitFailed is returned when the backend rejected the reservation
	ErrSubmitFailed = errors.New("draft: submit failed")

	// ErrInvalidState is returned for operations not allowed in the current state
	ErrInvalidState = errors.New("draft: operation not allowed in current state")

	// ErrStaleAvailability is returned when an availability result belongs to an older table/date selection
	ErrStaleAvailability = errors.New("draft: stale availability result")

	// ErrTableNotSuitable is returned when the table is inactive or too small for the party
	ErrTableNotSuitable = errors.New("draft: table is inactive or too small")

	// ErrInvalidInput is returned for invalid draft field values
	ErrInvalidInput = errors.New("draft: invalid input")

	// ErrBackend is returned when an availability fetch failed for a reason other than timeout
	ErrBackend = errors.New("draft: backend call failed")
)
