package patients

import (
	"context"
	"errors"
	"fmt"

	patientRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/patient"
	"github.com/m04kA/HMA-AdminService/internal/service/patients/models"
)

// Service сервис для работы с пациентами
type Service struct {
	patientRepo PatientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пациентов
func NewService(patientRepo PatientRepository, logger Logger) *Service {
	return &Service{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// List получает пациентов с поиском
func (s *Service) List(ctx context.Context, req *models.ListPatientsRequest) (*models.PatientListResponse, error) {
	s.logger.Info("List: fetching patients, search=%v", req.Search)

	patients, err := s.patientRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d patients", len(patients))
	return models.FromDomainPatientList(patients), nil
}

// GetByID получает пациента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PatientResponse, error) {
	s.logger.Info("GetByID: fetching patient id=%d", id)

	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("GetByID: patient id=%d not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("GetByID: repository error for patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPatient(p), nil
}

// Create создает нового пациента
func (s *Service) Create(ctx context.Context, req *models.SavePatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("Create: creating patient document=%s", req.Document)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	p, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.patientRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, patientRepo.ErrDuplicateDocument) {
			s.logger.Warn("Create: document %s already registered", req.Document)
			return nil, ErrDuplicateDocument
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created patient id=%d", created.ID)
	return models.FromDomainPatient(created), nil
}

// Update полностью перезаписывает карточку пациента
func (s *Service) Update(ctx context.Context, id int64, req *models.SavePatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("Update: updating patient id=%d", id)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for patient id=%d: %v", id, err)
		return nil, err
	}

	p, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid input for patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p.ID = id

	if err := s.patientRepo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, patientRepo.ErrPatientNotFound):
			s.logger.Warn("Update: patient id=%d not found", id)
			return nil, ErrPatientNotFound
		case errors.Is(err, patientRepo.ErrDuplicateDocument):
			s.logger.Warn("Update: document %s already registered", req.Document)
			return nil, ErrDuplicateDocument
		default:
			s.logger.Error("Update: repository error for patient id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated patient id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет пациента вместе с его записями
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting patient id=%d", id)

	if err := s.patientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Delete: patient id=%d not found", id)
			return ErrPatientNotFound
		}
		s.logger.Error("Delete: repository error for patient id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted patient id=%d", id)
	return nil
}

// validateSaveRequest проверяет обязательные поля карточки пациента
func validateSaveRequest(req *models.SavePatientRequest) error {
	if req.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if req.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if req.Document == "" {
		return fmt.Errorf("%w: document is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
