package get_time_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	staffRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/staff"
)

// UseCase use case получения дневной сетки слотов врача
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		logger:          logger,
	}
}

// Execute строит сетку слотов врача на дату.
// Операция чисто читающая: повторный вызов при неизменных записях возвращает
// тот же результат. Прошедшие даты также получают сетку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: doctor=%d, date=%s", req.DoctorID, req.Date.Format(domain.DateFormat))

	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем существование врача
	if _, err := uc.staffRepo.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetTimeSlots: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetTimeSlots: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	takenTimes, err := uc.appointmentRepo.ListActiveTimes(ctx, req.DoctorID, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to list taken slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list taken slots: %v", ErrInternal, err)
	}

	slots := generateGrid(takenTimes)

	uc.logger.Info("GetTimeSlots: doctor=%d, date=%s, %d slots generated",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
