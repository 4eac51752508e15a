package draft

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// State is the booking session state
type State int

const (
	StateEmpty State = iota
	StateGuestInfoEntered
	StateTableSelected
	StateTimeSelected
	StateSubmittable
	StateSubmitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateGuestInfoEntered:
		return "GuestInfoEntered"
	case StateTableSelected:
		return "TableSelected"
	case StateTimeSelected:
		return "TimeSelected"
	case StateSubmittable:
		return "Submittable"
	case StateSubmitted:
		return "Submitted"
	case StateCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// IsTerminal returns true once the session was submitted or cancelled
func (s State) IsTerminal() bool {
	return s == StateSubmitted || s == StateCancelled
}

// deriveState computes the non-terminal state from the draft contents
func deriveState(d *domain.ReservationDraft) State {
	switch {
	case d.SelectedTable == nil && d.HasGuestInfo():
		return StateGuestInfoEntered
	case d.SelectedTable == nil:
		return StateEmpty
	case d.SelectedTime == nil:
		return StateTableSelected
	case d.HasGuestInfo() && d.PartySize > 0:
		return StateSubmittable
	default:
		return StateTimeSelected
	}
}
