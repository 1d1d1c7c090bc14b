package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var (
	// ErrInvalidCategory возвращается при некорректной категории поста
	ErrInvalidCategory = errors.New("invalid post category")

	// ErrInvalidStatus возвращается при некорректном статусе поста
	ErrInvalidStatus = errors.New("invalid post status")

	// ErrInvalidPriority возвращается при некорректном приоритете поста
	ErrInvalidPriority = errors.New("invalid post priority")
)

// Request модели

// ListPostsRequest запрос на получение списка постов
type ListPostsRequest struct {
	Search   *string `json:"search,omitempty"`   // Поиск по заголовку/тексту/тегам
	Category *string `json:"category,omitempty"` // Фильтр по категории
	Author   *string `json:"author,omitempty"`   // Отображаемое имя автора
	Status   *string `json:"status,omitempty"`   // Статус; "all" и пусто - без фильтра
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListPostsRequest) ToDomainFilter() (domain.BlogFilter, error) {
	filter := domain.BlogFilter{
		Search: r.Search,
		Author: r.Author,
	}

	if r.Category != nil && *r.Category != "" {
		category := domain.BlogCategory(*r.Category)
		if !domain.ValidBlogCategory(category) {
			return filter, ErrInvalidCategory
		}
		filter.Category = &category
	}

	// "all" означает отсутствие фильтра по статусу
	if r.Status != nil && *r.Status != "" && *r.Status != "all" {
		status := domain.BlogStatus(*r.Status)
		if status != domain.BlogDraft && status != domain.BlogPublished {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// SavePostRequest запрос на создание или полное обновление поста
type SavePostRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Excerpt  string   `json:"excerpt"`
	AuthorID int64    `json:"authorId"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
	Priority string   `json:"priority"`
}

// ToDomain конвертирует request в domain модель (без published_at -
// правило публикации применяет сервис)
func (r *SavePostRequest) ToDomain() (*domain.BlogPost, error) {
	category := domain.BlogCategory(r.Category)
	if !domain.ValidBlogCategory(category) {
		return nil, ErrInvalidCategory
	}

	status := domain.BlogStatus(r.Status)
	if r.Status == "" {
		status = domain.BlogDraft
	} else if status != domain.BlogDraft && status != domain.BlogPublished {
		return nil, ErrInvalidStatus
	}

	priority := domain.Priority(r.Priority)
	if r.Priority == "" {
		priority = domain.PriorityMedium
	} else if priority != domain.PriorityLow && priority != domain.PriorityMedium && priority != domain.PriorityHigh {
		return nil, ErrInvalidPriority
	}

	return &domain.BlogPost{
		Title:    r.Title,
		Content:  r.Content,
		Excerpt:  r.Excerpt,
		AuthorID: r.AuthorID,
		Category: category,
		Tags:     types.StringArray(r.Tags),
		Status:   status,
		Priority: priority,
	}, nil
}

// Response модели

// PostResponse ответ с данными поста
type PostResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	AuthorID    int64      `json:"authorId"`
	AuthorName  string     `json:"authorName"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostListResponse ответ со списком постов
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

// AuthorsResponse список авторов постов
type AuthorsResponse struct {
	Authors []string `json:"authors"`
}

// Методы конвертации

// FromDomainPost конвертирует domain модель в DTO
func FromDomainPost(p *domain.BlogPost) *PostResponse {
	if p == nil {
		return nil
	}

	return &PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		AuthorID:    p.AuthorID,
		AuthorName:  p.AuthorName,
		Category:    string(p.Category),
		Tags:        []string(p.Tags),
		Status:      string(p.Status),
		Priority:    string(p.Priority),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDomainPostList конвертирует список domain моделей в DTO
func FromDomainPostList(posts []*domain.BlogPost) *PostListResponse {
	items := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, *FromDomainPost(p))
	}
	return &PostListResponse{Posts: items}
}
