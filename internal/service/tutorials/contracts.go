package tutorials

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

// TutorialRepository интерфейс репозитория обучающих материалов
type TutorialRepository interface {
	Create(ctx context.Context, t *domain.Tutorial) (*domain.Tutorial, error)
	GetByID(ctx context.Context, id int64) (*domain.Tutorial, error)
	List(ctx context.Context, filter domain.TutorialsFilter) ([]*domain.Tutorial, error)
	Update(ctx context.Context, t *domain.Tutorial) error
	IncrementViews(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Authors(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
