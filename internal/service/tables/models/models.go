package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
	Active   *bool  `json:"active,omitempty"` // по умолчанию true
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateTableRequest) ToDomain(restaurantID int64) *domain.Table {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Table{
		RestaurantID: restaurantID,
		Label:        r.Label,
		Capacity:     r.Capacity,
		Active:       active,
	}
}

// UpdateTableRequest запрос на изменение стола, все поля опциональны
type UpdateTableRequest struct {
	Label    *string `json:"label,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// ApplyTo применяет изменения к столу
func (r *UpdateTableRequest) ApplyTo(t *domain.Table) {
	if r.Label != nil {
		t.Label = *r.Label
	}
	if r.Capacity != nil {
		t.Capacity = *r.Capacity
	}
	if r.Active != nil {
		t.Active = *r.Active
	}
}

// TableResponse ответ с данными стола
type TableResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	Label        string    `json:"label"`
	Capacity     int       `json:"capacity"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}
	return &TableResponse{
		ID:           t.ID,
		RestaurantID: t.RestaurantID,
		Label:        t.Label,
		Capacity:     t.Capacity,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// FromDomainTableList конвертирует список domain моделей в DTO
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	resp := &TableListResponse{Tables: make([]TableResponse, 0, len(tables))}
	for _, t := range tables {
		if tr := FromDomainTable(t); tr != nil {
			resp.Tables = append(resp.Tables, *tr)
		}
	}
	return resp
}
