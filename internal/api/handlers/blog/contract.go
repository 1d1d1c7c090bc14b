package blog

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/service/blog/models"
)

type BlogService interface {
	List(ctx context.Context, req *models.ListPostsRequest) (*models.PostListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.PostResponse, error)
	Create(ctx context.Context, req *models.SavePostRequest) (*models.PostResponse, error)
	Update(ctx context.Context, id int64, req *models.SavePostRequest) (*models.PostResponse, error)
	Delete(ctx context.Context, id int64) error
	Authors(ctx context.Context) (*models.AuthorsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
