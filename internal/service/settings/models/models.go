package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateSettingsRequest запрос на изменение настроек смены
// Все поля опциональны - непереданные берутся из текущих (или дефолтных) настроек.
// Время принимается в виде "2:30 PM" или числа минут от начала суток.
type UpdateSettingsRequest struct {
	ShiftStart        *types.MinuteOfDay `json:"shiftStart,omitempty"`
	ShiftEnd          *types.MinuteOfDay `json:"shiftEnd,omitempty"`
	IntervalMinutes   *int               `json:"intervalMinutes,omitempty"`
	TurnaroundMinutes *int               `json:"turnaroundMinutes,omitempty"`
	BufferMinutes     *int               `json:"bufferMinutes,omitempty"`
}

// IsEmpty возвращает true, если ни одно поле не передано
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.ShiftStart == nil && r.ShiftEnd == nil && r.IntervalMinutes == nil &&
		r.TurnaroundMinutes == nil && r.BufferMinutes == nil
}

// ApplyTo применяет обновления к настройкам
func (r *UpdateSettingsRequest) ApplyTo(hours *domain.OperatingHours) {
	if r.ShiftStart != nil {
		hours.ShiftStart = *r.ShiftStart
	}
	if r.ShiftEnd != nil {
		hours.ShiftEnd = *r.ShiftEnd
	}
	if r.IntervalMinutes != nil {
		hours.IntervalMinutes = *r.IntervalMinutes
	}
	if r.TurnaroundMinutes != nil {
		hours.TurnaroundMinutes = *r.TurnaroundMinutes
	}
	if r.BufferMinutes != nil {
		hours.BufferMinutes = *r.BufferMinutes
	}
}

// SettingsResponse ответ с настройками смены ресторана
type SettingsResponse struct {
	RestaurantID      int64             `json:"restaurantId"`
	ShiftStart        types.MinuteOfDay `json:"shiftStart"` // "12:00 PM"
	ShiftEnd          types.MinuteOfDay `json:"shiftEnd"`
	ShiftStartMinute  int               `json:"shiftStartMinute"`
	ShiftEndMinute    int               `json:"shiftEndMinute"`
	IntervalMinutes   int               `json:"intervalMinutes"`
	TurnaroundMinutes int               `json:"turnaroundMinutes"`
	BufferMinutes     int               `json:"bufferMinutes"`
	IsDefault         bool              `json:"isDefault"` // настройки еще не сохранялись
	UpdatedAt         *time.Time        `json:"updatedAt,omitempty"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(h domain.OperatingHours, isDefault bool) *SettingsResponse {
	resp := &SettingsResponse{
		RestaurantID:      h.RestaurantID,
		ShiftStart:        h.ShiftStart,
		ShiftEnd:          h.ShiftEnd,
		ShiftStartMinute:  int(h.ShiftStart),
		ShiftEndMinute:    int(h.ShiftEnd),
		IntervalMinutes:   h.IntervalMinutes,
		TurnaroundMinutes: h.TurnaroundMinutes,
		BufferMinutes:     h.BufferMinutes,
		IsDefault:         isDefault,
	}
	if !h.UpdatedAt.IsZero() {
		updatedAt := h.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
