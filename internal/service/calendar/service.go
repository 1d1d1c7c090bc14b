package calendar

import (
	"context"
	"errors"
	"fmt"

	eventRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/calendar"
	"github.com/m04kA/HMA-AdminService/internal/service/calendar/models"
)

// Service сервис для работы с общим календарём
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// List получает события с фильтрацией по типу, участнику и периоду
func (s *Service) List(ctx context.Context, req *models.ListEventsRequest) (*models.EventListResponse, error) {
	s.logger.Info("List: fetching events, type=%v, attendee=%v, start=%v, end=%v",
		req.Type, req.Attendee, req.StartDate, req.EndDate)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d events", len(events))
	return models.FromDomainEventList(events), nil
}

// GetByID получает событие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	s.logger.Info("GetByID: fetching event id=%d", id)

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// Create создает новое событие
func (s *Service) Create(ctx context.Context, req *models.SaveEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Create: creating event title=%q, createdBy=%d", req.Title, req.CreatedBy)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	event, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created event id=%d", created.ID)
	return s.GetByID(ctx, created.ID)
}

// Update полностью перезаписывает событие
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Update: updating event id=%d", id)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for event id=%d: %v", id, err)
		return nil, err
	}

	event, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid input for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	event.ID = id

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Update: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("Update: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated event id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет событие
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting event id=%d", id)

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted event id=%d", id)
	return nil
}

// validateSaveRequest проверяет обязательные поля события
func validateSaveRequest(req *models.SaveEventRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.StartDate == "" {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate == "" {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}
	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}
	return nil
}
