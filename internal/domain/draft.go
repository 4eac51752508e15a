package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationDraft is an in-progress reservation assembled during one booking session.
// SelectedTime is only meaningful for the current SelectedTable and Date pair.
type ReservationDraft struct {
	GuestName     string
	Phone         string
	Email         *string
	PartySize     int
	Date          time.Time
	SelectedTable *Table
	SelectedTime  *types.MinuteOfDay
	Notes         *string
	Status        ReservationStatus // Confirmed or Pending
}

// HasGuestInfo returns true when both name and phone are filled in
func (d *ReservationDraft) HasGuestInfo() bool {
	return d.GuestName != "" && d.Phone != ""
}

// Clone returns a copy that shares no pointers with d
func (d *ReservationDraft) Clone() ReservationDraft {
	c := *d
	if d.Email != nil {
		email := *d.Email
		c.Email = &email
	}
	if d.Notes != nil {
		notes := *d.Notes
		c.Notes = &notes
	}
	if d.SelectedTable != nil {
		table := *d.SelectedTable
		c.SelectedTable = &table
	}
	if d.SelectedTime != nil {
		t := *d.SelectedTime
		c.SelectedTime = &t
	}
	return c
}
