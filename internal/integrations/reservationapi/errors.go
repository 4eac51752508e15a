package reservationapi

import "errors"

var (
	// ErrTimeout возвращается, когда запрос не уложился в таймаут
	ErrTimeout = errors.New("reservationapi client: request timed out")

	// ErrConflict возвращается, когда выбранное время уже занято (HTTP 409)
	ErrConflict = errors.New("reservationapi client: conflicting reservation")

	// ErrNotFound возвращается, когда ресурс не найден (HTTP 404)
	ErrNotFound = errors.New("reservationapi client: not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservationapi client: invalid response")
)
