package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение бронирований ресторана
type ListReservationsRequest struct {
	RestaurantID    int64
	TableID         *int64     // Фильтр по столу (опционально)
	Date            *time.Time // Фильтр по дате (опционально)
	Status          *string    // Фильтр по статусу (опционально)
	IncludeInactive bool       // Включить Completed/Cancelled/NoShow
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		RestaurantID:    r.RestaurantID,
		TableID:         r.TableID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateReservationRequest частичное обновление бронирования
type UpdateReservationRequest struct {
	GuestName *string
	Phone     *string
	Email     *string
	PartySize *int
	Date      *time.Time
	TableID   *int64
	StartTime *types.MinuteOfDay
	Status    *string
	Notes     *string
}

// ToDomainUpdate конвертирует request в domain модель с валидацией статуса
func (r *UpdateReservationRequest) ToDomainUpdate() (*domain.ReservationUpdate, error) {
	upd := &domain.ReservationUpdate{
		GuestName:   r.GuestName,
		Phone:       r.Phone,
		Email:       r.Email,
		PartySize:   r.PartySize,
		Date:        r.Date,
		TableID:     r.TableID,
		StartMinute: r.StartTime,
		Notes:       r.Notes,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		upd.Status = &status
	}

	return upd, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           int64             `json:"id"`
	RestaurantID int64             `json:"restaurantId"`
	TableID      int64             `json:"tableId"`
	TableLabel   string            `json:"tableLabel"`
	GuestName    string            `json:"guestName"`
	Phone        string            `json:"phone"`
	Email        *string           `json:"email,omitempty"`
	PartySize    int               `json:"partySize"`
	Date         string            `json:"date"`        // "2025-10-15"
	StartTime    types.MinuteOfDay `json:"startTime"`   // "7:30 PM"
	StartMinute  int               `json:"startMinute"` // 1170
	EndTime      types.MinuteOfDay `json:"endTime"`
	Status       string            `json:"status"`
	Source       string            `json:"source"`
	Notes        *string           `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		TableLabel:   r.TableLabel,
		GuestName:    r.GuestName,
		Phone:        r.Phone,
		Email:        r.Email,
		PartySize:    r.PartySize,
		Date:         r.Date.Format(domain.DateFormat),
		StartTime:    r.StartMinute,
		StartMinute:  int(r.StartMinute),
		EndTime:      r.EndMinute,
		Status:       string(r.Status),
		Source:       r.Source,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}

	for _, r := range list {
		if rr := FromDomainReservation(r); rr != nil {
			resp.Reservations = append(resp.Reservations, *rr)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
