package get_time_slots

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("get_time_slots: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_time_slots: internal error")
)
