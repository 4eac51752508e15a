package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// OperatingHours is the per-restaurant reservation settings.
// Immutable during a booking session.
type OperatingHours struct {
	RestaurantID      int64
	ShiftStart        types.MinuteOfDay
	ShiftEnd          types.MinuteOfDay
	IntervalMinutes   int
	TurnaroundMinutes int
	BufferMinutes     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupancyMinutes returns how long one reservation blocks a table
func (h OperatingHours) OccupancyMinutes() int {
	return h.TurnaroundMinutes + h.BufferMinutes
}

// ShiftLength returns the shift length in minutes, zero for a misconfigured shift
func (h OperatingHours) ShiftLength() int {
	if h.ShiftEnd < h.ShiftStart {
		return 0
	}
	return int(h.ShiftEnd - h.ShiftStart)
}

// CanHostReservation returns true if at least one full occupancy fits into the shift
func (h OperatingHours) CanHostReservation() bool {
	return h.OccupancyMinutes() <= h.ShiftLength()
}
