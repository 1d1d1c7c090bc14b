package book_appointment

import (
	"context"

	bookAppointment "github.com/m04kA/HMA-AdminService/internal/usecase/book_appointment"
)

type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
