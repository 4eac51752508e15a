package draft

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Backend is the part of the reservation API a booking session talks to
type Backend interface {
	GetReservationsFor(ctx context.Context, restaurantID, tableID int64, date time.Time) ([]*domain.Reservation, error)
	CreateReservation(ctx context.Context, restaurantID int64, draft *domain.ReservationDraft) (*domain.Reservation, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
