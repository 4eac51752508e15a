package reservationapi

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ErrorResponse модель ошибки от сервиса бронирований
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Settings настройки смены в ответе сервиса
type Settings struct {
	RestaurantID      int64 `json:"restaurantId"`
	ShiftStartMinute  int   `json:"shiftStartMinute"`
	ShiftEndMinute    int   `json:"shiftEndMinute"`
	IntervalMinutes   int   `json:"intervalMinutes"`
	TurnaroundMinutes int   `json:"turnaroundMinutes"`
	BufferMinutes     int   `json:"bufferMinutes"`
}

func (s *Settings) toDomain() domain.OperatingHours {
	return domain.OperatingHours{
		RestaurantID:      s.RestaurantID,
		ShiftStart:        types.MinuteOfDay(s.ShiftStartMinute),
		ShiftEnd:          types.MinuteOfDay(s.ShiftEndMinute),
		IntervalMinutes:   s.IntervalMinutes,
		TurnaroundMinutes: s.TurnaroundMinutes,
		BufferMinutes:     s.BufferMinutes,
	}
}

// Table стол в ответе сервиса
type Table struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Label        string `json:"label"`
	Capacity     int    `json:"capacity"`
	Active       bool   `json:"active"`
}

type tableList struct {
	Tables []Table `json:"tables"`
}

// Reservation бронирование в ответе сервиса
type Reservation struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	TableID      int64   `json:"tableId"`
	TableLabel   string  `json:"tableLabel"`
	GuestName    string  `json:"guestName"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	PartySize    int     `json:"partySize"`
	Date         string  `json:"date"`
	StartMinute  int     `json:"startMinute"`
	Status       string  `json:"status"`
	Source       string  `json:"source"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *Reservation) toDomain() (*domain.Reservation, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("reservation %d: date %q: %v", r.ID, r.Date, err)
	}
	return &domain.Reservation{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		TableLabel:   r.TableLabel,
		GuestName:    r.GuestName,
		Phone:        r.Phone,
		Email:        r.Email,
		PartySize:    r.PartySize,
		Date:         date,
		StartMinute:  types.MinuteOfDay(r.StartMinute),
		Status:       domain.ReservationStatus(r.Status),
		Source:       r.Source,
		Notes:        r.Notes,
	}, nil
}

type reservationList struct {
	Reservations []Reservation `json:"reservations"`
}

// AvailableSlots ответ сервиса с доступностью слотов стола
type AvailableSlots struct {
	Date             string `json:"date"`
	TableID          int64  `json:"tableId"`
	TableLabel       string `json:"tableLabel"`
	IntervalMinutes  int    `json:"intervalMinutes"`
	OccupancyMinutes int    `json:"occupancyMinutes"`
	AvailableCount   int    `json:"availableCount"`
	Slots            []Slot `json:"slots"`
}

// Slot слот в ответе сервиса
type Slot struct {
	StartMinute int  `json:"startMinute"`
	Available   bool `json:"available"`
}

// Free возвращает свободные слоты по возрастанию
func (a *AvailableSlots) Free() []types.MinuteOfDay {
	free := make([]types.MinuteOfDay, 0, a.AvailableCount)
	for _, s := range a.Slots {
		if s.Available {
			free = append(free, types.MinuteOfDay(s.StartMinute))
		}
	}
	return free
}

// createReservationRequest тело POST /reservations
type createReservationRequest struct {
	TableID   *int64  `json:"tableId,omitempty"`
	GuestName string  `json:"guestName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	PartySize int     `json:"partySize"`
	Date      string  `json:"date"`
	StartTime int     `json:"startTime"`
	Status    string  `json:"status,omitempty"`
	Source    string  `json:"source,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func newCreateReservationRequest(d *domain.ReservationDraft, source string) (*createReservationRequest, error) {
	if d.SelectedTime == nil {
		return nil, fmt.Errorf("draft has no selected time")
	}
	req := &createReservationRequest{
		GuestName: d.GuestName,
		Phone:     d.Phone,
		Email:     d.Email,
		PartySize: d.PartySize,
		Date:      d.Date.Format(domain.DateFormat),
		StartTime: int(*d.SelectedTime),
		Status:    string(d.Status),
		Source:    source,
		Notes:     d.Notes,
	}
	if d.SelectedTable != nil {
		tableID := d.SelectedTable.ID
		req.TableID = &tableID
	}
	return req, nil
}

// updateReservationRequest тело PUT /reservations/{id}
type updateReservationRequest struct {
	GuestName *string `json:"guestName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	PartySize *int    `json:"partySize,omitempty"`
	Date      *string `json:"date,omitempty"`
	TableID   *int64  `json:"tableId,omitempty"`
	StartTime *int    `json:"startTime,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func newUpdateReservationRequest(u *domain.ReservationUpdate) *updateReservationRequest {
	req := &updateReservationRequest{
		GuestName: u.GuestName,
		Phone:     u.Phone,
		Email:     u.Email,
		PartySize: u.PartySize,
		TableID:   u.TableID,
		Notes:     u.Notes,
	}
	if u.Date != nil {
		date := u.Date.Format(domain.DateFormat)
		req.Date = &date
	}
	if u.StartMinute != nil {
		start := int(*u.StartMinute)
		req.StartTime = &start
	}
	if u.Status != nil {
		status := string(*u.Status)
		req.Status = &status
	}
	return req
}
