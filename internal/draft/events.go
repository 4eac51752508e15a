package draft

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// EventKind describes what changed in the session
type EventKind string

const (
	EventGuestUpdated        EventKind = "guest_updated"
	EventTableSelected       EventKind = "table_selected"
	EventDateChanged         EventKind = "date_changed"
	EventAvailabilityUpdated EventKind = "availability_updated"
	EventAvailabilityFailed  EventKind = "availability_failed"
	EventTimeSelected        EventKind = "time_selected"
	EventTimeCleared         EventKind = "time_cleared"
	EventSubmitted           EventKind = "submitted"
	EventSubmitFailed        EventKind = "submit_failed"
	EventCancelled           EventKind = "cancelled"
)

// Event is delivered to subscribers after every state change.
// Draft is a copy, subscribers may keep it.
type Event struct {
	Kind  EventKind
	State State
	Draft domain.ReservationDraft
	Err   error
}

type subscriber struct {
	id int
	fn func(Event)
}
