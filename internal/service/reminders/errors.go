package reminders

import "errors"

var (
	// ErrReminderNotFound возвращается, когда напоминание не найдено
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
