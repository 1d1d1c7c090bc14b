package get_time_slots

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	ListActiveTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
