package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("reservations: table not found")

	// ErrTableNotSuitable возвращается, когда стол неактивен или слишком мал для компании гостей
	ErrTableNotSuitable = errors.New("reservations: table is inactive or too small")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("reservations: invalid reservation status")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом смены
	ErrInvalidTimeSlot = errors.New("reservations: invalid time slot")

	// ErrInvalidDate возвращается при переносе бронирования на прошедшую дату
	ErrInvalidDate = errors.New("reservations: invalid reservation date")

	// ErrSlotUnavailable возвращается, когда слот пересекается с другим бронированием стола
	ErrSlotUnavailable = errors.New("reservations: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
