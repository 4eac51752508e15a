package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/internal/schedule"
)

// UseCase use case для получения слотов стола на дату
type UseCase struct {
	settings        SettingsProvider
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsProvider,
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:        settings,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: restaurant=%d, table=%d, date=%s",
		req.RestaurantID, req.TableID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Настройки смены (дефолтные, если ресторан их не сохранял)
	hours, err := uc.settings.GetOperatingHours(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Стол должен существовать и участвовать в планировании
	table, err := uc.tableRepo.GetByID(ctx, req.RestaurantID, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("GetAvailableSlots: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}
	if !table.Active {
		uc.logger.Warn("GetAvailableSlots: table id=%d is inactive", req.TableID)
		return nil, ErrTableInactive
	}

	// 4. Кандидаты
	candidates, err := candidateSlots(hours, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to enumerate slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	resp := &Response{
		Date:             domain.DateOnly(req.Date),
		TableID:          table.ID,
		TableLabel:       table.Label,
		IntervalMinutes:  hours.IntervalMinutes,
		OccupancyMinutes: hours.OccupancyMinutes(),
		Slots:            []Slot{},
	}
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: no candidate slots for table=%d on %s", req.TableID, req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 5. Активные бронирования стола на дату
	tableID, date := req.TableID, domain.DateOnly(req.Date)
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		RestaurantID: req.RestaurantID,
		TableID:      &tableID,
		Date:         &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Разрешаем конфликты
	free := schedule.Resolve(tableID, date, candidates, reservations, hours)
	resp.Slots, resp.AvailableCount = markAvailability(candidates, free)

	uc.metrics.RecordAvailability(req.RestaurantID, len(candidates), len(candidates)-resp.AvailableCount)
	uc.logger.Info("GetAvailableSlots: %d/%d slots available for table=%d on %s",
		resp.AvailableCount, len(candidates), req.TableID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
