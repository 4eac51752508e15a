package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/schedule"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// candidateSlots строит слоты смены на дату
// Для прошедшей даты слотов нет, для сегодняшней отбрасываются уже начавшиеся
func candidateSlots(hours domain.OperatingHours, date, now time.Time) ([]types.MinuteOfDay, error) {
	if domain.IsDateInPast(date, now) {
		return []types.MinuteOfDay{}, nil
	}

	all, err := schedule.Enumerate(hours)
	if err != nil {
		return nil, err
	}

	if !domain.IsSameDay(date, now) {
		return all, nil
	}

	current := types.MinuteOfDay(now.Hour()*60 + now.Minute())
	return schedule.DropStarted(all, current), nil
}

// markAvailability помечает каждый слот свободным или занятым
func markAvailability(candidates []types.MinuteOfDay, free schedule.SlotSet) ([]Slot, int) {
	slots := make([]Slot, len(candidates))
	available := 0

	for i, start := range candidates {
		ok := free.Contains(start)
		if ok {
			available++
		}
		slots[i] = Slot{Start: start, Available: ok}
	}

	return slots, available
}
