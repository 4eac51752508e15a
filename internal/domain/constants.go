package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Default operating hours, used when a restaurant has not saved settings yet
const (
	DefaultShiftStart        types.MinuteOfDay = 12 * 60 // 12:00 PM
	DefaultShiftEnd          types.MinuteOfDay = 23 * 60 // 11:00 PM
	DefaultIntervalMinutes                     = 30
	DefaultTurnaroundMinutes                   = 90
	DefaultBufferMinutes                       = 0
)

// Business validation constants
const (
	MinIntervalMinutes    = 5
	MaxIntervalMinutes    = 240
	MaxTurnaroundMinutes  = 720
	MaxBufferMinutes      = 240
	MaxPartySize          = 100
	MaxTableCapacity      = 100
	MaxNotesLength        = 500
	MaxGuestNameLength    = 200
	MaxTableLabelLength   = 50
	DefaultReservationSrc = "Phone"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses statuses that never block a table
var InactiveStatuses = []ReservationStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses statuses that occupy a table
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusPending,
}

// DefaultOperatingHours returns settings for a restaurant without saved configuration
func DefaultOperatingHours(restaurantID int64) OperatingHours {
	return OperatingHours{
		RestaurantID:      restaurantID,
		ShiftStart:        DefaultShiftStart,
		ShiftEnd:          DefaultShiftEnd,
		IntervalMinutes:   DefaultIntervalMinutes,
		TurnaroundMinutes: DefaultTurnaroundMinutes,
		BufferMinutes:     DefaultBufferMinutes,
	}
}
