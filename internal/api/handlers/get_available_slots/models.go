package get_available_slots

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string          `json:"date"`
	TableID          int64           `json:"tableId"`
	TableLabel       string          `json:"tableLabel"`
	IntervalMinutes  int             `json:"intervalMinutes"`
	OccupancyMinutes int             `json:"occupancyMinutes"`
	AvailableCount   int             `json:"availableCount"`
	Slots            []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime   types.MinuteOfDay `json:"startTime"`   // "7:30 PM"
	StartMinute int               `json:"startMinute"` // 1170
	Available   bool              `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:   slot.Start,
			StartMinute: int(slot.Start),
			Available:   slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		TableID:          resp.TableID,
		TableLabel:       resp.TableLabel,
		IntervalMinutes:  resp.IntervalMinutes,
		OccupancyMinutes: resp.OccupancyMinutes,
		AvailableCount:   resp.AvailableCount,
		Slots:            slots,
	}
}
