package patients

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patient not found")

	// ErrDuplicateDocument возвращается, когда документ уже зарегистрирован
	ErrDuplicateDocument = errors.New("document already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
