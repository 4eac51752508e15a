package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Enumerate генерирует все возможные начала слотов на день:
// ShiftStart, ShiftStart+interval, ... пока значение не превышает ShiftEnd (включительно).
// При ShiftStart > ShiftEnd возвращает пустой список, это не ошибка.
func Enumerate(hours domain.OperatingHours) ([]types.MinuteOfDay, error) {
	if hours.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, hours.IntervalMinutes)
	}

	if hours.ShiftStart > hours.ShiftEnd {
		return []types.MinuteOfDay{}, nil
	}

	slots := make([]types.MinuteOfDay, 0, int(hours.ShiftEnd-hours.ShiftStart)/hours.IntervalMinutes+1)
	for current := hours.ShiftStart; current <= hours.ShiftEnd; current = current.Add(hours.IntervalMinutes) {
		slots = append(slots, current)
	}

	return slots, nil
}

// DropStarted убирает слоты, которые уже начались к моменту now (для бронирования на сегодня)
func DropStarted(slots []types.MinuteOfDay, now types.MinuteOfDay) []types.MinuteOfDay {
	result := make([]types.MinuteOfDay, 0, len(slots))
	for _, slot := range slots {
		if slot >= now {
			result = append(result, slot)
		}
	}
	return result
}

// Contains проверяет, что minute является одним из кандидатов
func Contains(slots []types.MinuteOfDay, minute types.MinuteOfDay) bool {
	for _, slot := range slots {
		if slot == minute {
			return true
		}
	}
	return false
}
