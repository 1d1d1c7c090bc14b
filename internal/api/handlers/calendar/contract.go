package calendar

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/service/calendar/models"
)

type CalendarService interface {
	List(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EventResponse, error)
	Create(ctx context.Context, req *models.SaveEventRequest) (*models.EventResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveEventRequest) (*models.EventResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
