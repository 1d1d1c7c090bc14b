package staff

import (
	"context"
	"errors"
	"fmt"

	staffRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/staff"
	"github.com/m04kA/HMA-AdminService/internal/service/staff/models"
)

// Service сервис для работы с сотрудниками
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// List получает сотрудников с поиском и фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListStaffRequest) (*models.StaffListResponse, error) {
	s.logger.Info("List: fetching staff, search=%v, type=%v, department=%v, status=%v",
		req.Search, req.Type, req.Department, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	staff, err := s.staffRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d staff members", len(staff))
	return models.FromDomainStaffList(staff), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StaffResponse, error) {
	s.logger.Info("GetByID: fetching staff member id=%d", id)

	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByID: staff member id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(member), nil
}

// Create создает нового сотрудника
func (s *Service) Create(ctx context.Context, req *models.SaveStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Create: creating staff member email=%s", req.Email)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	member, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, staffRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created staff member id=%d", created.ID)
	return models.FromDomainStaff(created), nil
}

// Update полностью перезаписывает карточку сотрудника
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("Update: updating staff member id=%d", id)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for staff id=%d: %v", id, err)
		return nil, err
	}

	member, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid input for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	member.ID = id

	if err := s.staffRepo.Update(ctx, member); err != nil {
		switch {
		case errors.Is(err, staffRepo.ErrStaffNotFound):
			s.logger.Warn("Update: staff member id=%d not found", id)
			return nil, ErrStaffNotFound
		case errors.Is(err, staffRepo.ErrDuplicateEmail):
			s.logger.Warn("Update: email %s already registered", req.Email)
			return nil, ErrDuplicateEmail
		default:
			s.logger.Error("Update: repository error for staff id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated staff member id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет сотрудника
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting staff member id=%d", id)

	if err := s.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Delete: staff member id=%d not found", id)
			return ErrStaffNotFound
		}
		s.logger.Error("Delete: repository error for staff id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted staff member id=%d", id)
	return nil
}

// Stats возвращает сводку по персоналу
func (s *Service) Stats(ctx context.Context) (*models.StaffStatsResponse, error) {
	s.logger.Info("Stats: fetching staff summary")

	stats, err := s.staffRepo.Stats(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}

// Departments возвращает список отделений
func (s *Service) Departments(ctx context.Context) (*models.DepartmentsResponse, error) {
	s.logger.Info("Departments: fetching department list")

	departments, err := s.staffRepo.Departments(ctx)
	if err != nil {
		s.logger.Error("Departments: repository error: %v", err)
		return nil, fmt.Errorf("%w: Departments - repository error: %v", ErrInternal, err)
	}

	return &models.DepartmentsResponse{Departments: departments}, nil
}

// validateSaveRequest проверяет обязательные поля карточки сотрудника
func validateSaveRequest(req *models.SaveStaffRequest) error {
	if req.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if req.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.Position == "" {
		return fmt.Errorf("%w: position is required", ErrInvalidInput)
	}
	if req.Department == "" {
		return fmt.Errorf("%w: department is required", ErrInvalidInput)
	}
	if req.HireDate == "" {
		return fmt.Errorf("%w: hireDate is required", ErrInvalidInput)
	}
	return nil
}
