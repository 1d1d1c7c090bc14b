package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	postRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/blog"
	"github.com/m04kA/HMA-AdminService/internal/service/blog/models"
)

// Service сервис для работы с внутренними объявлениями
type Service struct {
	postRepo     PostRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(postRepo PostRepository, logger Logger) *Service {
	return &Service{
		postRepo:     postRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает посты с поиском и фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListPostsRequest) (*models.PostListResponse, error) {
	s.logger.Info("List: fetching posts, search=%v, category=%v, author=%v, status=%v",
		req.Search, req.Category, req.Author, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	posts, err := s.postRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d posts", len(posts))
	return models.FromDomainPostList(posts), nil
}

// GetByID получает пост по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PostResponse, error) {
	s.logger.Info("GetByID: fetching post id=%d", id)

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			s.logger.Warn("GetByID: post id=%d not found", id)
			return nil, ErrPostNotFound
		}
		s.logger.Error("GetByID: repository error for post id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPost(post), nil
}

// Create создает новый пост.
// Пост со статусом published сразу получает published_at.
func (s *Service) Create(ctx context.Context, req *models.SavePostRequest) (*models.PostResponse, error) {
	s.logger.Info("Create: creating post title=%q, author=%d", req.Title, req.AuthorID)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	post, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if post.Status == domain.BlogPublished {
		now := s.timeProvider.Now()
		post.PublishedAt = &now
	}

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created post id=%d", created.ID)
	return s.GetByID(ctx, created.ID)
}

// Update полностью перезаписывает пост.
// Переход draft -> published устанавливает published_at; уже опубликованный
// пост сохраняет исходное время публикации.
func (s *Service) Update(ctx context.Context, id int64, req *models.SavePostRequest) (*models.PostResponse, error) {
	s.logger.Info("Update: updating post id=%d", id)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for post id=%d: %v", id, err)
		return nil, err
	}

	current, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			s.logger.Warn("Update: post id=%d not found", id)
			return nil, ErrPostNotFound
		}
		s.logger.Error("Update: repository error for post id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	post, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid input for post id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	post.ID = id

	post.PublishedAt = current.PublishedAt
	if current.Status == domain.BlogDraft && post.Status == domain.BlogPublished {
		now := s.timeProvider.Now()
		post.PublishedAt = &now
		s.logger.Info("Update: post id=%d published", id)
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			s.logger.Warn("Update: post id=%d not found", id)
			return nil, ErrPostNotFound
		}
		s.logger.Error("Update: repository error for post id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated post id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет пост
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting post id=%d", id)

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			s.logger.Warn("Delete: post id=%d not found", id)
			return ErrPostNotFound
		}
		s.logger.Error("Delete: repository error for post id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted post id=%d", id)
	return nil
}

// Authors возвращает список авторов постов
func (s *Service) Authors(ctx context.Context) (*models.AuthorsResponse, error) {
	s.logger.Info("Authors: fetching author list")

	authors, err := s.postRepo.Authors(ctx)
	if err != nil {
		s.logger.Error("Authors: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authors - repository error: %v", ErrInternal, err)
	}

	return &models.AuthorsResponse{Authors: authors}, nil
}

// validateSaveRequest проверяет обязательные поля поста
func validateSaveRequest(req *models.SavePostRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if req.Excerpt == "" {
		return fmt.Errorf("%w: excerpt is required", ErrInvalidInput)
	}
	if req.AuthorID <= 0 {
		return fmt.Errorf("%w: authorId must be positive", ErrInvalidInput)
	}
	return nil
}
