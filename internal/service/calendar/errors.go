package calendar

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
