package book_appointment

import (
	"fmt"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Patient.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}

	if req.Patient.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}

	if req.Patient.Document == "" {
		return fmt.Errorf("%w: document is required", ErrInvalidInput)
	}

	if req.Patient.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorId must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время слота указано
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDoctor проверяет, что сотрудник может принимать пациентов
func validateDoctor(s *domain.Staff) error {
	if !s.IsActiveDoctor() {
		return ErrDoctorNotAvailable
	}
	return nil
}
