package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на получение слотов стола
type Request struct {
	RestaurantID int64
	TableID      int64
	Date         time.Time // Дата без времени
}

// Response модель ответа со всеми слотами смены и их доступностью
type Response struct {
	Date             time.Time
	TableID          int64
	TableLabel       string
	IntervalMinutes  int
	OccupancyMinutes int // turnaround + buffer
	Slots            []Slot
	AvailableCount   int
}

// Slot модель временного слота
type Slot struct {
	Start     types.MinuteOfDay // Начало слота
	Available bool              // Не пересекается с активными бронированиями стола
}
