package blog

import (
	"context"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

// PostRepository интерфейс репозитория постов
type PostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	List(ctx context.Context, filter domain.BlogFilter) ([]*domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id int64) error
	Authors(ctx context.Context) ([]string, error)
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
