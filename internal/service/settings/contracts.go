package settings

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек смены
type SettingsRepository interface {
	Get(ctx context.Context, restaurantID int64) (*domain.OperatingHours, error)
	Upsert(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
