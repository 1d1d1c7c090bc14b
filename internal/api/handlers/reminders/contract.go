package reminders

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/service/reminders/models"
)

type RemindersService interface {
	List(ctx context.Context, req *models.ListRemindersRequest) (*models.ReminderListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ReminderResponse, error)
	Create(ctx context.Context, req *models.SaveReminderRequest) (*models.ReminderResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveReminderRequest) (*models.ReminderResponse, error)
	Complete(ctx context.Context, id int64) (*models.ReminderResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
