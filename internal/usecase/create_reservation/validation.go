package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает начальный статус
func validateRequest(req *Request) (domain.ReservationStatus, error) {
	if req.RestaurantID <= 0 {
		return "", fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	req.GuestName = strings.TrimSpace(req.GuestName)
	if req.GuestName == "" {
		return "", fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(req.GuestName) > domain.MaxGuestNameLength {
		return "", fmt.Errorf("%w: guestName must be at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" {
		return "", fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 || req.PartySize > domain.MaxPartySize {
		return "", fmt.Errorf("%w: partySize must be between 1 and %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.TableID != nil && *req.TableID <= 0 {
		return "", fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	status := domain.StatusConfirmed
	if req.Status != nil {
		status = domain.ReservationStatus(*req.Status)
		if !status.IsInitial() {
			return "", fmt.Errorf("%w: status must be %s or %s", ErrInvalidInput, domain.StatusConfirmed, domain.StatusPending)
		}
	}

	return status, nil
}

// validateStartTime проверяет, что дата не в прошлом, а сегодняшний слот еще не начался
func validateStartTime(date time.Time, start types.MinuteOfDay, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	if !domain.IsSameDay(date, now) {
		return nil
	}

	current := types.MinuteOfDay(now.Hour()*60 + now.Minute())
	if start < current {
		return fmt.Errorf("%w: %s has already started", ErrInvalidTimeSlot, start)
	}

	return nil
}

// source возвращает источник бронирования или значение по умолчанию
func source(req *Request) string {
	if req.Source == nil || strings.TrimSpace(*req.Source) == "" {
		return domain.DefaultReservationSrc
	}
	return strings.TrimSpace(*req.Source)
}
