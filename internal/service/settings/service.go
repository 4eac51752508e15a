package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ReservationService/internal/service/settings/models"
)

// Service сервис настроек смены ресторана
type Service struct {
	repo     SettingsRepository
	defaults domain.OperatingHours
	logger   Logger
}

// NewService создает новый экземпляр сервиса настроек
// defaults используются для ресторанов, которые еще не сохранили свои настройки
func NewService(repo SettingsRepository, defaults domain.OperatingHours, logger Logger) *Service {
	return &Service{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// GetOperatingHours возвращает настройки смены ресторана
// Если настройки не сохранены, возвращает дефолтные
func (s *Service) GetOperatingHours(ctx context.Context, restaurantID int64) (domain.OperatingHours, error) {
	hours, _, err := s.load(ctx, restaurantID)
	return hours, err
}

// Get возвращает настройки смены для API
func (s *Service) Get(ctx context.Context, restaurantID int64) (*models.SettingsResponse, error) {
	s.logger.Info("GetSettings: fetching settings for restaurant=%d", restaurantID)

	hours, isDefault, err := s.load(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return models.FromDomain(hours, isDefault), nil
}

// Update изменяет настройки смены (создает при первом сохранении)
// Поддерживает частичное обновление поверх текущих настроек
func (s *Service) Update(ctx context.Context, restaurantID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating settings for restaurant=%d", restaurantID)

	if req == nil || req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// 1. Берем текущие настройки как основу
	hours, _, err := s.load(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения и валидируем результат целиком
	req.ApplyTo(&hours)
	if err := Validate(hours); err != nil {
		s.logger.Warn("UpdateSettings: validation failed for restaurant=%d: %v", restaurantID, err)
		return nil, err
	}

	// 3. Сохраняем
	saved, err := s.repo.Upsert(ctx, &hours)
	if err != nil {
		s.logger.Error("UpdateSettings: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: saved settings for restaurant=%d: shift %s - %s, interval=%d, turnaround=%d, buffer=%d",
		restaurantID, saved.ShiftStart, saved.ShiftEnd, saved.IntervalMinutes, saved.TurnaroundMinutes, saved.BufferMinutes)
	return models.FromDomain(*saved, false), nil
}

// load получает настройки из БД или дефолтные, второй результат - признак дефолтных настроек
func (s *Service) load(ctx context.Context, restaurantID int64) (domain.OperatingHours, bool, error) {
	hours, err := s.repo.Get(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("GetSettings: no saved settings for restaurant=%d, using defaults", restaurantID)
			defaults := s.defaults
			defaults.RestaurantID = restaurantID
			return defaults, true, nil
		}
		s.logger.Error("GetSettings: repository error for restaurant=%d: %v", restaurantID, err)
		return domain.OperatingHours{}, false, fmt.Errorf("%w: GetOperatingHours - repository error: %v", ErrInternal, err)
	}

	return *hours, false, nil
}

// Validate проверяет настройки смены
func Validate(h domain.OperatingHours) error {
	if err := h.ShiftStart.Validate(); err != nil {
		return fmt.Errorf("%w: shiftStart: %v", ErrInvalidInput, err)
	}
	if err := h.ShiftEnd.Validate(); err != nil {
		return fmt.Errorf("%w: shiftEnd: %v", ErrInvalidInput, err)
	}
	if h.ShiftStart >= h.ShiftEnd {
		return fmt.Errorf("%w: shiftStart must be before shiftEnd", ErrInvalidInput)
	}
	if h.IntervalMinutes < domain.MinIntervalMinutes || h.IntervalMinutes > domain.MaxIntervalMinutes {
		return fmt.Errorf("%w: intervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}
	if h.TurnaroundMinutes < 0 || h.TurnaroundMinutes > domain.MaxTurnaroundMinutes {
		return fmt.Errorf("%w: turnaroundMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxTurnaroundMinutes)
	}
	if h.BufferMinutes < 0 || h.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	return nil
}
