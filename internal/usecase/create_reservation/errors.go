package create_reservation

import "errors"

var (
	// ErrTableNotFound возвращается, когда запрошенный стол не найден
	ErrTableNotFound = errors.New("create_reservation: table not found")

	// ErrTableNotSuitable возвращается, когда стол неактивен или слишком мал для компании гостей
	ErrTableNotSuitable = errors.New("create_reservation: table is inactive or too small")

	// ErrInvalidDate возвращается при бронировании на прошедшую дату
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidTimeSlot возвращается, когда время не является слотом смены или уже началось
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotUnavailable возвращается, когда слот занят (в том числе параллельным бронированием)
	ErrSlotUnavailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
