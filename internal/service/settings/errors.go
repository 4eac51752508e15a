package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных настройках смены
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)
