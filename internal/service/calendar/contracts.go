package calendar

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

// EventRepository интерфейс репозитория событий календаря
type EventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error)
	List(ctx context.Context, filter domain.CalendarFilter) ([]*domain.CalendarEvent, error)
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
