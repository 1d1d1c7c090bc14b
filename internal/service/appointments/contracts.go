package appointments

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	appointmentRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/appointment"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, id int64, fields appointmentRepo.UpdateFields) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
