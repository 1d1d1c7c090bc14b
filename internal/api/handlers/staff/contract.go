package staff

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/service/staff/models"
)

type StaffService interface {
	List(ctx context.Context, req *models.ListStaffRequest) (*models.StaffListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.StaffResponse, error)
	Create(ctx context.Context, req *models.SaveStaffRequest) (*models.StaffResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveStaffRequest) (*models.StaffResponse, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.StaffStatsResponse, error)
	Departments(ctx context.Context) (*models.DepartmentsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
