package get_available_slots

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("get_available_slots: table not found")

	// ErrTableInactive возвращается, когда стол выключен из планирования
	ErrTableInactive = errors.New("get_available_slots: table is inactive")

	// ErrInvalidSettings возвращается, когда настройки смены не позволяют построить слоты
	ErrInvalidSettings = errors.New("get_available_slots: invalid operating hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
