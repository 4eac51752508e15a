package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SettingsProvider источник настроек смены (с учетом дефолтных)
type SettingsProvider interface {
	GetOperatingHours(ctx context.Context, restaurantID int64) (domain.OperatingHours, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, restaurantID, id int64) (*domain.Table, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// List получает бронирования стола на дату (только активные)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// MetricsRecorder учет проверенных слотов
type MetricsRecorder interface {
	RecordAvailability(restaurantID int64, evaluated, blocked int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
