package reminders

import (
	"context"
	"errors"
	"fmt"

	reminderRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/reminder"
	"github.com/m04kA/HMA-AdminService/internal/service/reminders/models"
)

// Service сервис для работы с напоминаниями
type Service struct {
	reminderRepo ReminderRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(reminderRepo ReminderRepository, logger Logger) *Service {
	return &Service{
		reminderRepo: reminderRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает напоминания с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListRemindersRequest) (*models.ReminderListResponse, error) {
	s.logger.Info("List: fetching reminders, status=%v, priority=%v, assignedTo=%v",
		req.Status, req.Priority, req.AssignedTo)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reminders, err := s.reminderRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reminders", len(reminders))
	return models.FromDomainReminderList(reminders), nil
}

// GetByID получает напоминание по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReminderResponse, error) {
	s.logger.Info("GetByID: fetching reminder id=%d", id)

	rem, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			s.logger.Warn("GetByID: reminder id=%d not found", id)
			return nil, ErrReminderNotFound
		}
		s.logger.Error("GetByID: repository error for reminder id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReminder(rem), nil
}

// Create создает новое напоминание
func (s *Service) Create(ctx context.Context, req *models.SaveReminderRequest) (*models.ReminderResponse, error) {
	s.logger.Info("Create: creating reminder title=%q, createdBy=%d", req.Title, req.CreatedBy)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	rem, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.reminderRepo.Create(ctx, rem)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created reminder id=%d", created.ID)
	return s.GetByID(ctx, created.ID)
}

// Update полностью перезаписывает напоминание
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveReminderRequest) (*models.ReminderResponse, error) {
	s.logger.Info("Update: updating reminder id=%d", id)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for reminder id=%d: %v", id, err)
		return nil, err
	}

	current, err := s.reminderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			s.logger.Warn("Update: reminder id=%d not found", id)
			return nil, ErrReminderNotFound
		}
		s.logger.Error("Update: repository error for reminder id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	rem, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid input for reminder id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	rem.ID = id
	rem.CompletedAt = current.CompletedAt

	if err := s.reminderRepo.Update(ctx, rem); err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			s.logger.Warn("Update: reminder id=%d not found", id)
			return nil, ErrReminderNotFound
		}
		s.logger.Error("Update: repository error for reminder id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated reminder id=%d", id)
	return s.GetByID(ctx, id)
}

// Complete помечает напоминание выполненным.
// Операция идемпотентна: повторное выполнение лишь обновит completed_at.
func (s *Service) Complete(ctx context.Context, id int64) (*models.ReminderResponse, error) {
	s.logger.Info("Complete: completing reminder id=%d", id)

	if err := s.reminderRepo.Complete(ctx, id, s.timeProvider.Now()); err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			s.logger.Warn("Complete: reminder id=%d not found", id)
			return nil, ErrReminderNotFound
		}
		s.logger.Error("Complete: repository error for reminder id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed reminder id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет напоминание
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reminder id=%d", id)

	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			s.logger.Warn("Delete: reminder id=%d not found", id)
			return ErrReminderNotFound
		}
		s.logger.Error("Delete: repository error for reminder id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reminder id=%d", id)
	return nil
}

// validateSaveRequest проверяет обязательные поля напоминания
func validateSaveRequest(req *models.SaveReminderRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.DueDate == "" {
		return fmt.Errorf("%w: dueDate is required", ErrInvalidInput)
	}
	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}
	return nil
}
