package patients

import (
	"context"

	"github.com/m04kA/HMA-AdminService/internal/service/patients/models"
)

type PatientsService interface {
	List(ctx context.Context, req *models.ListPatientsRequest) (*models.PatientListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.PatientResponse, error)
	Create(ctx context.Context, req *models.SavePatientRequest) (*models.PatientResponse, error)
	Update(ctx context.Context, id int64, req *models.SavePatientRequest) (*models.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
