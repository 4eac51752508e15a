package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const tableName = "restaurant_settings"

// Repository репозиторий настроек смены ресторана (одна строка на ресторан)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки ресторана
func (r *Repository) Get(ctx context.Context, restaurantID int64) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"restaurant_id",
		"shift_start_minute",
		"shift_end_minute",
		"interval_minutes",
		"turnaround_minutes",
		"buffer_minutes",
		"created_at",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.OperatingHours
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.RestaurantID,
		&hours.ShiftStart,
		&hours.ShiftEnd,
		&hours.IntervalMinutes,
		&hours.TurnaroundMinutes,
		&hours.BufferMinutes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time
	return &hours, nil
}

// Upsert создает или перезаписывает настройки ресторана
func (r *Repository) Upsert(ctx context.Context, hours *domain.OperatingHours) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"restaurant_id",
			"shift_start_minute",
			"shift_end_minute",
			"interval_minutes",
			"turnaround_minutes",
			"buffer_minutes",
		).
		Values(
			hours.RestaurantID,
			hours.ShiftStart,
			hours.ShiftEnd,
			hours.IntervalMinutes,
			hours.TurnaroundMinutes,
			hours.BufferMinutes,
		).
		Suffix(`ON CONFLICT (restaurant_id) DO UPDATE SET
			shift_start_minute = EXCLUDED.shift_start_minute,
			shift_end_minute = EXCLUDED.shift_end_minute,
			interval_minutes = EXCLUDED.interval_minutes,
			turnaround_minutes = EXCLUDED.turnaround_minutes,
			buffer_minutes = EXCLUDED.buffer_minutes,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time
	return hours, nil
}
