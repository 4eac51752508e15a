package create_reservation

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID   *int64             `json:"tableId,omitempty"` // без стола подбирается первый подходящий
	GuestName string             `json:"guestName"`
	Phone     string             `json:"phone"`
	Email     *string            `json:"email,omitempty"`
	PartySize int                `json:"partySize"`
	Date      string             `json:"date"`      // "2025-10-15"
	StartTime *types.MinuteOfDay `json:"startTime"` // "7:30 PM" или 1170
	Status    *string            `json:"status,omitempty"`
	Source    *string            `json:"source,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64             `json:"id"`
	RestaurantID int64             `json:"restaurantId"`
	TableID      int64             `json:"tableId"`
	TableLabel   string            `json:"tableLabel"`
	GuestName    string            `json:"guestName"`
	Phone        string            `json:"phone"`
	Email        *string           `json:"email,omitempty"`
	PartySize    int               `json:"partySize"`
	Date         string            `json:"date"`
	StartTime    types.MinuteOfDay `json:"startTime"`
	StartMinute  int               `json:"startMinute"`
	EndTime      types.MinuteOfDay `json:"endTime"`
	Status       string            `json:"status"`
	Source       string            `json:"source"`
	Notes        *string           `json:"notes,omitempty"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(restaurantID int64) (*createReservation.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	if r.StartTime == nil {
		return nil, errors.New("startTime is required")
	}

	return &createReservation.Request{
		RestaurantID: restaurantID,
		TableID:      r.TableID,
		GuestName:    r.GuestName,
		Phone:        r.Phone,
		Email:        r.Email,
		PartySize:    r.PartySize,
		Date:         date,
		StartTime:    *r.StartTime,
		Status:       r.Status,
		Source:       r.Source,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		RestaurantID: resp.RestaurantID,
		TableID:      resp.TableID,
		TableLabel:   resp.TableLabel,
		GuestName:    resp.GuestName,
		Phone:        resp.Phone,
		Email:        resp.Email,
		PartySize:    resp.PartySize,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime,
		StartMinute:  int(resp.StartTime),
		EndTime:      resp.EndTime,
		Status:       resp.Status,
		Source:       resp.Source,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
