package tutorial

import "errors"

var (
	// ErrTutorialNotFound возвращается, когда материал не найден
	ErrTutorialNotFound = errors.New("tutorial.repository: tutorial not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tutorial.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tutorial.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tutorial.repository: failed to scan row")
)
