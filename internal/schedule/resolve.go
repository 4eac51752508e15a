package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// SlotSet множество свободных слотов
type SlotSet map[types.MinuteOfDay]struct{}

// NewSlotSet собирает множество из списка
func NewSlotSet(slots ...types.MinuteOfDay) SlotSet {
	set := make(SlotSet, len(slots))
	for _, slot := range slots {
		set[slot] = struct{}{}
	}
	return set
}

// Contains проверяет наличие слота
func (s SlotSet) Contains(slot types.MinuteOfDay) bool {
	_, ok := s[slot]
	return ok
}

// Sorted возвращает слоты по возрастанию
func (s SlotSet) Sorted() []types.MinuteOfDay {
	result := make([]types.MinuteOfDay, 0, len(s))
	for slot := range s {
		result = append(result, slot)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Overlaps проверяет пересечение полуинтервалов [a1, a2) и [b1, b2).
// Граничащие интервалы (a2 == b1) не пересекаются.
func Overlaps(a1, a2, b1, b2 int) bool {
	return a1 < b2 && b1 < a2
}

// Resolve возвращает подмножество candidates, не пересекающееся ни с одним активным
// бронированием стола tableID на дату date.
//
// Каждое бронирование занимает [start, start+turnaround+buffer), слот проверяется на том же окне.
// Границы смены не перепроверяются: за них отвечает Enumerate.
func Resolve(
	tableID int64,
	date time.Time,
	candidates []types.MinuteOfDay,
	reservations []*domain.Reservation,
	hours domain.OperatingHours,
) SlotSet {
	occupancy := hours.OccupancyMinutes()

	blocking := make([][2]int, 0, len(reservations))
	for _, r := range reservations {
		if r == nil || r.TableID != tableID || !domain.IsSameDay(r.Date, date) || !r.IsActive() {
			continue
		}
		start, end := r.OccupiedInterval(hours)
		blocking = append(blocking, [2]int{start, end})
	}

	available := make(SlotSet, len(candidates))
	for _, slot := range candidates {
		slotStart := int(slot)
		slotEnd := slotStart + occupancy

		free := true
		for _, b := range blocking {
			if Overlaps(slotStart, slotEnd, b[0], b[1]) {
				free = false
				break
			}
		}
		if free {
			available[slot] = struct{}{}
		}
	}

	return available
}
