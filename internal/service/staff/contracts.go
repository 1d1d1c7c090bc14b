package staff

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	List(ctx context.Context, filter domain.StaffFilter) ([]*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.StaffStats, error)
	Departments(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
