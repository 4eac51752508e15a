package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/internal/schedule"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Результаты создания бронирования для метрик
const (
	outcomeCreated  = "created"
	outcomeConflict = "conflict"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// UseCase use case для создания бронирования стола
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	settings        SettingsProvider
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		settings:        settings,
		txManager:       txManager,
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

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию: два параллельных запроса на один слот не создадут двух бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	result, err := uc.execute(ctx, req)
	uc.metrics.RecordReservation(outcomeOf(err))
	return result, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: restaurant=%d, table=%v, party=%d, date=%s, time=%s",
		req.RestaurantID, req.TableID, req.PartySize, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом, сегодняшний слот еще не начался
	now := uc.timeProvider.Now()
	if err := validateStartTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: time validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	var result *domain.Reservation

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Настройки смены
		hours, err := uc.settings.GetOperatingHours(txCtx, req.RestaurantID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 3.2. Время должно быть одним из слотов смены
		candidates, err := schedule.Enumerate(hours)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to enumerate slots: %v", err)
			return fmt.Errorf("%w: failed to enumerate slots: %v", ErrInternal, err)
		}
		if !schedule.Contains(candidates, req.StartTime) {
			uc.logger.Warn("CreateReservation: %s is not a slot of the shift %s - %s every %d min",
				req.StartTime, hours.ShiftStart, hours.ShiftEnd, hours.IntervalMinutes)
			return fmt.Errorf("%w: %s is not a slot of the shift", ErrInvalidTimeSlot, req.StartTime)
		}

		// 3.3. Выбираем стол и проверяем слот с блокировкой строк (FOR UPDATE)
		table, err := uc.pickTable(txCtx, req, date, hours)
		if err != nil {
			return err
		}

		// 3.4. Создаем бронирование
		reservation := &domain.Reservation{
			RestaurantID: req.RestaurantID,
			TableID:      table.ID,
			TableLabel:   table.Label,
			GuestName:    req.GuestName,
			Phone:        req.Phone,
			Email:        req.Email,
			PartySize:    req.PartySize,
			Date:         date,
			StartMinute:  req.StartTime,
			EndMinute:    req.StartTime.Add(hours.OccupancyMinutes()),
			Status:       status,
			Source:       source(req),
			Notes:        req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d on table=%s at %s",
		result.ID, result.TableLabel, result.StartMinute)

	return &Response{
		ID:           result.ID,
		RestaurantID: result.RestaurantID,
		TableID:      result.TableID,
		TableLabel:   result.TableLabel,
		GuestName:    result.GuestName,
		Phone:        result.Phone,
		Email:        result.Email,
		PartySize:    result.PartySize,
		Date:         result.Date,
		StartTime:    result.StartMinute,
		EndTime:      result.EndMinute,
		Status:       string(result.Status),
		Source:       result.Source,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// pickTable возвращает запрошенный стол или первый по названию подходящий свободный
func (uc *UseCase) pickTable(ctx context.Context, req *Request, date time.Time, hours domain.OperatingHours) (*domain.Table, error) {
	if req.TableID != nil {
		table, err := uc.tableRepo.GetByID(ctx, req.RestaurantID, *req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("CreateReservation: table id=%d not found", *req.TableID)
				return nil, ErrTableNotFound
			}
			uc.logger.Error("CreateReservation: failed to get table id=%d: %v", *req.TableID, err)
			return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}

		if !table.Fits(req.PartySize) {
			uc.logger.Warn("CreateReservation: table id=%d (active=%t, capacity=%d) cannot host party of %d",
				table.ID, table.Active, table.Capacity, req.PartySize)
			return nil, ErrTableNotSuitable
		}

		free, err := uc.isFree(ctx, req.RestaurantID, table.ID, date, req.StartTime, hours)
		if err != nil {
			return nil, err
		}
		if !free {
			uc.logger.Warn("CreateReservation: slot %s on table=%s is taken", req.StartTime, table.Label)
			return nil, ErrSlotUnavailable
		}

		return table, nil
	}

	tables, err := uc.tableRepo.List(ctx, req.RestaurantID, true)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	fitting := 0
	for _, table := range tables {
		if !table.Fits(req.PartySize) {
			continue
		}
		fitting++

		free, err := uc.isFree(ctx, req.RestaurantID, table.ID, date, req.StartTime, hours)
		if err != nil {
			return nil, err
		}
		if free {
			uc.logger.Info("CreateReservation: picked table=%s (capacity=%d)", table.Label, table.Capacity)
			return table, nil
		}
	}

	if fitting == 0 {
		uc.logger.Warn("CreateReservation: no active table seats party of %d", req.PartySize)
		return nil, ErrTableNotSuitable
	}

	uc.logger.Warn("CreateReservation: all %d fitting tables are taken at %s", fitting, req.StartTime)
	return nil, ErrSlotUnavailable
}

// isFree проверяет слот на столе по активным бронированиям
func (uc *UseCase) isFree(
	ctx context.Context,
	restaurantID, tableID int64,
	date time.Time,
	start types.MinuteOfDay,
	hours domain.OperatingHours,
) (bool, error) {
	reservations, err := uc.reservationRepo.List(ctx, domain.ReservationsFilter{
		RestaurantID: restaurantID,
		TableID:      &tableID,
		Date:         &date,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get reservations for table=%d: %v", tableID, err)
		return false, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	free := schedule.Resolve(tableID, date, []types.MinuteOfDay{start}, reservations, hours)
	return free.Contains(start), nil
}

// outcomeOf классифицирует результат для метрик
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeCreated
	case errors.Is(err, ErrSlotUnavailable):
		return outcomeConflict
	case errors.Is(err, ErrInternal):
		return outcomeError
	default:
		return outcomeRejected
	}
}
