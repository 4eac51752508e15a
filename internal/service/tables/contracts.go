package tables

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, restaurantID, id int64) (*domain.Table, error)
	List(ctx context.Context, restaurantID int64, activeOnly bool) ([]*domain.Table, error)
	Update(ctx context.Context, t *domain.Table) (*domain.Table, error)
	Delete(ctx context.Context, restaurantID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
