package tutorials

import "errors"

var (
	// ErrTutorialNotFound возвращается, когда материал не найден
	ErrTutorialNotFound = errors.New("tutorial not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
