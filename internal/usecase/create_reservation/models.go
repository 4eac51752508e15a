package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RestaurantID int64
	TableID      *int64            // nil - подобрать первый подходящий свободный стол
	GuestName    string            // Имя гостя
	Phone        string            // Телефон гостя
	Email        *string           // Email (опционально)
	PartySize    int               // Количество гостей
	Date         time.Time         // Дата без времени
	StartTime    types.MinuteOfDay // Начало слота
	Status       *string           // Confirmed (по умолчанию) или Pending
	Source       *string           // Источник бронирования, по умолчанию "Phone"
	Notes        *string           // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	RestaurantID int64
	TableID      int64
	TableLabel   string
	GuestName    string
	Phone        string
	Email        *string
	PartySize    int
	Date         time.Time
	StartTime    types.MinuteOfDay
	EndTime      types.MinuteOfDay // StartTime + turnaround + buffer
	Status       string
	Source       string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
