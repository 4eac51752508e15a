package update_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model, все поля опциональны
type UpdateReservationRequest struct {
	GuestName *string            `json:"guestName,omitempty"`
	Phone     *string            `json:"phone,omitempty"`
	Email     *string            `json:"email,omitempty"`
	PartySize *int               `json:"partySize,omitempty"`
	Date      *string            `json:"date,omitempty"` // "2025-10-15"
	TableID   *int64             `json:"tableId,omitempty"`
	StartTime *types.MinuteOfDay `json:"startTime,omitempty"`
	Status    *string            `json:"status,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateReservationRequest) ToServiceRequest() (*models.UpdateReservationRequest, error) {
	req := &models.UpdateReservationRequest{
		GuestName: r.GuestName,
		Phone:     r.Phone,
		Email:     r.Email,
		PartySize: r.PartySize,
		TableID:   r.TableID,
		StartTime: r.StartTime,
		Status:    r.Status,
		Notes:     r.Notes,
	}

	if r.Date != nil {
		date, err := handlers.ParseDate(*r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
