package update_appointment

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/service/appointments/models"
)

type AppointmentsService interface {
	Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
