package tutorials

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/service/tutorials/models"
)

type TutorialsService interface {
	List(ctx context.Context, req *models.ListTutorialsRequest) (*models.TutorialListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.TutorialResponse, error)
	Create(ctx context.Context, req *models.SaveTutorialRequest) (*models.TutorialResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveTutorialRequest) (*models.TutorialResponse, error)
	View(ctx context.Context, id int64) (*models.TutorialResponse, error)
	Delete(ctx context.Context, id int64) error
	Authors(ctx context.Context) (*models.AuthorsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
