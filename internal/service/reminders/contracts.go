package reminders

import (
	"context"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error)
	GetByID(ctx context.Context, id int64) (*domain.Reminder, error)
	List(ctx context.Context, filter domain.RemindersFilter) ([]*domain.Reminder, error)
	Update(ctx context.Context, rem *domain.Reminder) error
	Complete(ctx context.Context, id int64, completedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
