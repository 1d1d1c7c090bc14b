package blog

import "errors"

var (
	// ErrPostNotFound возвращается, когда пост не найден
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
