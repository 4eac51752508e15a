package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "Confirmed"
	StatusPending   ReservationStatus = "Pending"
	StatusCompleted ReservationStatus = "Completed"
	StatusCancelled ReservationStatus = "Cancelled"
	StatusNoShow    ReservationStatus = "NoShow"
)

// IsValid returns true for known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsInitial returns true for statuses a new reservation may be created with
func (s ReservationStatus) IsInitial() bool {
	return s == StatusConfirmed || s == StatusPending
}

// BlocksTable returns true if a reservation with this status occupies its table.
// Completed reservations do not block: the guest has left.
func (s ReservationStatus) BlocksTable() bool {
	return s == StatusConfirmed || s == StatusPending
}

// Reservation represents a table reservation
type Reservation struct {
	ID           int64
	RestaurantID int64
	TableID      int64
	TableLabel   string // denormalized for history
	GuestName    string
	Phone        string
	Email        *string
	PartySize    int
	Date         time.Time // restaurant-local calendar date
	StartMinute  types.MinuteOfDay
	EndMinute    types.MinuteOfDay // start + turnaround + buffer at creation time
	Status       ReservationStatus
	Source       string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its table for availability purposes
func (r *Reservation) IsActive() bool {
	return r.Status.BlocksTable()
}

// OccupiedInterval returns the half-open minute interval [start, end) the reservation blocks
func (r *Reservation) OccupiedInterval(hours OperatingHours) (int, int) {
	start := int(r.StartMinute)
	return start, start + hours.OccupancyMinutes()
}

// ReservationsFilter фильтр для получения бронирований ресторана
type ReservationsFilter struct {
	RestaurantID    int64      // Обязательный параметр
	TableID         *int64     // Фильтр по столу (опционально)
	Date            *time.Time // Конкретная дата (опционально)
	Status          *ReservationStatus
	IncludeInactive bool  // Включать ли Completed/Cancelled/NoShow
	ExcludeID       *int64 // Исключить бронирование (при переносе)
}

// ReservationUpdate частичное обновление бронирования
type ReservationUpdate struct {
	GuestName   *string
	Phone       *string
	Email       *string
	PartySize   *int
	Date        *time.Time
	TableID     *int64
	StartMinute *types.MinuteOfDay
	Status      *ReservationStatus
	Notes       *string
}

// IsEmpty returns true when no field is set
func (u *ReservationUpdate) IsEmpty() bool {
	return u.GuestName == nil && u.Phone == nil && u.Email == nil && u.PartySize == nil &&
		u.Date == nil && u.TableID == nil && u.StartMinute == nil && u.Status == nil && u.Notes == nil
}

// MovesSlot returns true when the update changes the table, date or start time
func (u *ReservationUpdate) MovesSlot() bool {
	return u.Date != nil || u.TableID != nil || u.StartMinute != nil
}
