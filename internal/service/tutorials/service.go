package tutorials

import (
	"context"
	"errors"
	"fmt"

	tutorialRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/tutorial"
	"github.com/m04kA/HMA-AdminService/internal/service/tutorials/models"
)

// Service сервис для работы с обучающими материалами
type Service struct {
	tutorialRepo TutorialRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса обучающих материалов
func NewService(tutorialRepo TutorialRepository, logger Logger) *Service {
	return &Service{
		tutorialRepo: tutorialRepo,
		logger:       logger,
	}
}

// List получает опубликованные материалы с поиском и фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListTutorialsRequest) (*models.TutorialListResponse, error) {
	s.logger.Info("List: fetching tutorials, search=%v, category=%v, difficulty=%v, author=%v",
		req.Search, req.Category, req.Difficulty, req.Author)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	tutorials, err := s.tutorialRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d tutorials", len(tutorials))
	return models.FromDomainTutorialList(tutorials), nil
}

// GetByID получает материал по ID независимо от статуса публикации
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TutorialResponse, error) {
	s.logger.Info("GetByID: fetching tutorial id=%d", id)

	tutorial, err := s.tutorialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tutorialRepo.ErrTutorialNotFound) {
			s.logger.Warn("GetByID: tutorial id=%d not found", id)
			return nil, ErrTutorialNotFound
		}
		s.logger.Error("GetByID: repository error for tutorial id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTutorial(tutorial), nil
}

// Create создает новый материал
func (s *Service) Create(ctx context.Context, req *models.SaveTutorialRequest) (*models.TutorialResponse, error) {
	s.logger.Info("Create: creating tutorial title=%q, author=%d", req.Title, req.AuthorID)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	tutorial, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.tutorialRepo.Create(ctx, tutorial)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created tutorial id=%d", created.ID)
	return s.GetByID(ctx, created.ID)
}

// Update полностью перезаписывает материал.
// Счетчик просмотров и рейтинг не затрагиваются.
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveTutorialRequest) (*models.TutorialResponse, error) {
	s.logger.Info("Update: updating tutorial id=%d", id)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for tutorial id=%d: %v", id, err)
		return nil, err
	}

	tutorial, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid input for tutorial id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	tutorial.ID = id

	if err := s.tutorialRepo.Update(ctx, tutorial); err != nil {
		if errors.Is(err, tutorialRepo.ErrTutorialNotFound) {
			s.logger.Warn("Update: tutorial id=%d not found", id)
			return nil, ErrTutorialNotFound
		}
		s.logger.Error("Update: repository error for tutorial id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated tutorial id=%d", id)
	return s.GetByID(ctx, id)
}

// View увеличивает счетчик просмотров и возвращает материал
func (s *Service) View(ctx context.Context, id int64) (*models.TutorialResponse, error) {
	s.logger.Info("View: registering view for tutorial id=%d", id)

	if err := s.tutorialRepo.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, tutorialRepo.ErrTutorialNotFound) {
			s.logger.Warn("View: tutorial id=%d not found", id)
			return nil, ErrTutorialNotFound
		}
		s.logger.Error("View: repository error for tutorial id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: View - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete физически удаляет материал
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting tutorial id=%d", id)

	if err := s.tutorialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tutorialRepo.ErrTutorialNotFound) {
			s.logger.Warn("Delete: tutorial id=%d not found", id)
			return ErrTutorialNotFound
		}
		s.logger.Error("Delete: repository error for tutorial id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted tutorial id=%d", id)
	return nil
}

// Authors возвращает список авторов материалов
func (s *Service) Authors(ctx context.Context) (*models.AuthorsResponse, error) {
	s.logger.Info("Authors: fetching author list")

	authors, err := s.tutorialRepo.Authors(ctx)
	if err != nil {
		s.logger.Error("Authors: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authors - repository error: %v", ErrInternal, err)
	}

	return &models.AuthorsResponse{Authors: authors}, nil
}

// validateSaveRequest проверяет обязательные поля материала
func validateSaveRequest(req *models.SaveTutorialRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if req.AuthorID <= 0 {
		return fmt.Errorf("%w: authorId must be positive", ErrInvalidInput)
	}
	return nil
}
