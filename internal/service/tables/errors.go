package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("tables: table not found")

	// ErrDuplicateLabel возвращается, когда стол с таким названием уже есть в ресторане
	ErrDuplicateLabel = errors.New("tables: table label already exists")

	// ErrTableInUse возвращается при удалении стола, на который есть бронирования
	ErrTableInUse = errors.New("tables: table has reservations, deactivate it instead")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tables: internal error")
)
