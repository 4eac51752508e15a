package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/internal/schedule"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Service сервис для работы с бронированиями столов
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	settings        SettingsProvider
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		settings:        settings,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование ресторана по ID
func (s *Service) GetByID(ctx context.Context, restaurantID, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetReservation: restaurant=%d, reservation=%d", restaurantID, id)

	res, err := s.reservationRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetReservation: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает бронирования ресторана
// С фильтром по столу и дате это GetReservationsFor - вход для расчета доступности
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("ListReservations: restaurant=%d", req.RestaurantID)
	if req.TableID != nil {
		logMsg += fmt.Sprintf(", table=%d", *req.TableID)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListReservations: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error for restaurant=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReservations: fetched %d reservations for restaurant=%d", len(list), req.RestaurantID)
	return models.FromDomainReservationList(list), nil
}

// Update частично обновляет бронирование
// Перенос на другой стол, дату или время заново проверяет конфликты (без учета самого бронирования)
func (s *Service) Update(ctx context.Context, restaurantID, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateReservation: restaurant=%d, reservation=%d", restaurantID, id)

	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("UpdateReservation: invalid status for reservation id=%d", id)
		return nil, ErrInvalidStatus
	}
	if upd.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	var result *domain.Reservation

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Текущее состояние бронирования
		res, err := s.reservationRepo.GetByID(txCtx, restaurantID, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("UpdateReservation: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("UpdateReservation: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - get reservation: %v", ErrInternal, err)
		}

		wasBlocking := res.IsActive()
		applyUpdate(res, upd)

		if err := validateReservation(res); err != nil {
			s.logger.Warn("UpdateReservation: validation failed for reservation id=%d: %v", id, err)
			return err
		}

		if upd.Date != nil && domain.IsDateInPast(res.Date, now) {
			s.logger.Warn("UpdateReservation: date %s is in the past", res.Date.Format(domain.DateFormat))
			return ErrInvalidDate
		}

		// 2. Стол: при переносе должен быть активным, вместимость проверяется всегда при смене стола или гостей
		if upd.TableID != nil || upd.PartySize != nil {
			table, err := s.tableRepo.GetByID(txCtx, restaurantID, res.TableID)
			if err != nil {
				if errors.Is(err, tableRepo.ErrTableNotFound) {
					s.logger.Warn("UpdateReservation: table id=%d not found", res.TableID)
					return ErrTableNotFound
				}
				s.logger.Error("UpdateReservation: failed to get table id=%d: %v", res.TableID, err)
				return fmt.Errorf("%w: Update - get table: %v", ErrInternal, err)
			}
			if (upd.TableID != nil && !table.Active) || table.Capacity < res.PartySize {
				s.logger.Warn("UpdateReservation: table id=%d (active=%t, capacity=%d) cannot host party of %d",
					table.ID, table.Active, table.Capacity, res.PartySize)
				return ErrTableNotSuitable
			}
			res.TableLabel = table.Label
		}

		// 3. Конфликты проверяются, если бронирование занимает стол и слот сдвинулся или бронирование снова активно
		reactivated := !wasBlocking && res.IsActive()
		if upd.MovesSlot() || reactivated {
			hours, err := s.settings.GetOperatingHours(txCtx, restaurantID)
			if err != nil {
				s.logger.Error("UpdateReservation: failed to get settings: %v", err)
				return fmt.Errorf("%w: Update - get settings: %v", ErrInternal, err)
			}

			if upd.StartMinute != nil {
				candidates, err := schedule.Enumerate(hours)
				if err != nil {
					s.logger.Error("UpdateReservation: failed to enumerate slots: %v", err)
					return fmt.Errorf("%w: Update - enumerate slots: %v", ErrInternal, err)
				}
				if !schedule.Contains(candidates, res.StartMinute) {
					s.logger.Warn("UpdateReservation: %s is not a slot of the shift", res.StartMinute)
					return ErrInvalidTimeSlot
				}
				res.EndMinute = res.StartMinute.Add(hours.OccupancyMinutes())
			}

			if res.IsActive() {
				if err := s.checkConflicts(txCtx, res, hours); err != nil {
					return err
				}
			}
		}

		updated, err := s.reservationRepo.Update(txCtx, res)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			s.logger.Error("UpdateReservation: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateReservation: updated reservation id=%d (table=%d, date=%s, start=%s, status=%s)",
		result.ID, result.TableID, result.Date.Format(domain.DateFormat), result.StartMinute, result.Status)
	return models.FromDomainReservation(result), nil
}

// checkConflicts проверяет, что слот бронирования свободен на его столе и дате
func (s *Service) checkConflicts(ctx context.Context, res *domain.Reservation, hours domain.OperatingHours) error {
	tableID, date, excludeID := res.TableID, res.Date, res.ID

	existing, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{
		RestaurantID: res.RestaurantID,
		TableID:      &tableID,
		Date:         &date,
		ExcludeID:    &excludeID,
	})
	if err != nil {
		s.logger.Error("UpdateReservation: failed to get reservations: %v", err)
		return fmt.Errorf("%w: Update - get reservations: %v", ErrInternal, err)
	}

	free := schedule.Resolve(tableID, date, []types.MinuteOfDay{res.StartMinute}, existing, hours)
	if !free.Contains(res.StartMinute) {
		s.logger.Warn("UpdateReservation: slot %s on table=%d, date=%s is taken",
			res.StartMinute, tableID, date.Format(domain.DateFormat))
		return ErrSlotUnavailable
	}
	return nil
}

// applyUpdate применяет непустые поля обновления
func applyUpdate(res *domain.Reservation, upd *domain.ReservationUpdate) {
	if upd.GuestName != nil {
		res.GuestName = strings.TrimSpace(*upd.GuestName)
	}
	if upd.Phone != nil {
		res.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.Email != nil {
		res.Email = upd.Email
	}
	if upd.PartySize != nil {
		res.PartySize = *upd.PartySize
	}
	if upd.Date != nil {
		res.Date = domain.DateOnly(*upd.Date)
	}
	if upd.TableID != nil {
		res.TableID = *upd.TableID
	}
	if upd.StartMinute != nil {
		res.StartMinute = *upd.StartMinute
	}
	if upd.Status != nil {
		res.Status = *upd.Status
	}
	if upd.Notes != nil {
		res.Notes = upd.Notes
	}
}

// validateReservation проверяет поля гостя после применения обновления
func validateReservation(res *domain.Reservation) error {
	if res.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(res.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName must be at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}
	if res.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if res.PartySize <= 0 || res.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between 1 and %d", ErrInvalidInput, domain.MaxPartySize)
	}
	if res.Notes != nil && len(*res.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if err := res.StartMinute.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	return nil
}
