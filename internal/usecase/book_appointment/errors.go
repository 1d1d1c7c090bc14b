package book_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("book_appointment: doctor not found")

	// ErrDoctorNotAvailable возвращается, когда сотрудник не врач или неактивен
	ErrDoctorNotAvailable = errors.New("book_appointment: doctor is not available for appointments")

	// ErrSlotTaken возвращается, когда слот уже занят активной записью
	ErrSlotTaken = errors.New("book_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
