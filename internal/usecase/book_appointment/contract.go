package book_appointment

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListActiveTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error)
}

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	GetByDocument(ctx context.Context, document string) (*domain.Patient, error)
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	UpdateContact(ctx context.Context, id int64, firstName, lastName, phone string, email *string) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
