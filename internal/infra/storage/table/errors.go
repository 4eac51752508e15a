package table

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("table.repository: table not found")

	// ErrDuplicateLabel возвращается, когда стол с таким названием уже есть в ресторане
	ErrDuplicateLabel = errors.New("table.repository: duplicate table label")

	// ErrTableInUse возвращается при удалении стола, на который есть бронирования
	ErrTableInUse = errors.New("table.repository: table has reservations")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("table.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("table.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("table.repository: failed to scan row")
)
