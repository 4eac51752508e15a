package tables

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
)

// Service сервис столов ресторана
type Service struct {
	repo   TableRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(repo TableRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create создает стол
func (s *Service) Create(ctx context.Context, restaurantID int64, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("CreateTable: restaurant=%d, label=%q, capacity=%d", restaurantID, req.Label, req.Capacity)

	t := req.ToDomain(restaurantID)
	t.Label = strings.TrimSpace(t.Label)
	if err := validateTable(t); err != nil {
		s.logger.Warn("CreateTable: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, s.mapRepoError("CreateTable", err)
	}

	s.logger.Info("CreateTable: created table id=%d for restaurant=%d", created.ID, restaurantID)
	return models.FromDomainTable(created), nil
}

// List возвращает столы ресторана, activeOnly оставляет только участвующие в планировании
func (s *Service) List(ctx context.Context, restaurantID int64, activeOnly bool) (*models.TableListResponse, error) {
	s.logger.Info("ListTables: restaurant=%d, activeOnly=%t", restaurantID, activeOnly)

	tables, err := s.repo.List(ctx, restaurantID, activeOnly)
	if err != nil {
		s.logger.Error("ListTables: repository error for restaurant=%d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableList(tables), nil
}

// Update изменяет название, вместимость или активность стола
func (s *Service) Update(ctx context.Context, restaurantID, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("UpdateTable: restaurant=%d, table=%d", restaurantID, id)

	if req.Label == nil && req.Capacity == nil && req.Active == nil {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	t, err := s.repo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, s.mapRepoError("UpdateTable", err)
	}

	req.ApplyTo(t)
	t.Label = strings.TrimSpace(t.Label)
	if err := validateTable(t); err != nil {
		s.logger.Warn("UpdateTable: validation failed for table=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, s.mapRepoError("UpdateTable", err)
	}

	s.logger.Info("UpdateTable: updated table id=%d", id)
	return models.FromDomainTable(updated), nil
}

// Delete удаляет стол без бронирований
func (s *Service) Delete(ctx context.Context, restaurantID, id int64) error {
	s.logger.Info("DeleteTable: restaurant=%d, table=%d", restaurantID, id)

	if err := s.repo.Delete(ctx, restaurantID, id); err != nil {
		return s.mapRepoError("DeleteTable", err)
	}

	s.logger.Info("DeleteTable: deleted table id=%d", id)
	return nil
}

// mapRepoError переводит ошибки репозитория в ошибки сервиса
func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, tableRepo.ErrTableNotFound):
		s.logger.Warn("%s: table not found", op)
		return ErrTableNotFound
	case errors.Is(err, tableRepo.ErrDuplicateLabel):
		s.logger.Warn("%s: duplicate label", op)
		return ErrDuplicateLabel
	case errors.Is(err, tableRepo.ErrTableInUse):
		s.logger.Warn("%s: table has reservations", op)
		return ErrTableInUse
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// validateTable проверяет название и вместимость стола
func validateTable(t *domain.Table) error {
	if t.Label == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if len(t.Label) > domain.MaxTableLabelLength {
		return fmt.Errorf("%w: label must be at most %d characters", ErrInvalidInput, domain.MaxTableLabelLength)
	}
	if t.Capacity <= 0 || t.Capacity > domain.MaxTableCapacity {
		return fmt.Errorf("%w: capacity must be between 1 and %d", ErrInvalidInput, domain.MaxTableCapacity)
	}
	return nil
}
