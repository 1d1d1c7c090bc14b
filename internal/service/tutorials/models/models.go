package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var (
	// ErrInvalidCategory возвращается при некорректной категории материала
	ErrInvalidCategory = errors.New("invalid tutorial category")

	// ErrInvalidDifficulty возвращается при некорректной сложности
	ErrInvalidDifficulty = errors.New("invalid tutorial difficulty")
)

func validDifficulty(d domain.TutorialDifficulty) bool {
	switch d {
	case domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced:
		return true
	}
	return false
}

// Request модели

// ListTutorialsRequest запрос на получение списка материалов
type ListTutorialsRequest struct {
	Search     *string `json:"search,omitempty"`     // Поиск по заголовку/тексту/тегам
	Category   *string `json:"category,omitempty"`   // Фильтр по категории
	Difficulty *string `json:"difficulty,omitempty"` // Фильтр по сложности
	Author     *string `json:"author,omitempty"`     // Отображаемое имя автора
}

// ToDomainFilter конвертирует request в domain фильтр.
// Список всегда показывает только опубликованные материалы.
func (r *ListTutorialsRequest) ToDomainFilter() (domain.TutorialsFilter, error) {
	filter := domain.TutorialsFilter{
		Search:        r.Search,
		Author:        r.Author,
		PublishedOnly: true,
	}

	if r.Category != nil && *r.Category != "" {
		category := domain.TutorialCategory(*r.Category)
		if !domain.ValidTutorialCategory(category) {
			return filter, ErrInvalidCategory
		}
		filter.Category = &category
	}

	if r.Difficulty != nil && *r.Difficulty != "" {
		difficulty := domain.TutorialDifficulty(*r.Difficulty)
		if !validDifficulty(difficulty) {
			return filter, ErrInvalidDifficulty
		}
		filter.Difficulty = &difficulty
	}

	return filter, nil
}

// SaveTutorialRequest запрос на создание или полное обновление материала
type SaveTutorialRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	AuthorID      int64    `json:"authorId"`
	Difficulty    string   `json:"difficulty"`
	EstimatedTime int      `json:"estimatedTime"`
	Steps         []string `json:"steps"`
	IsPublished   *bool    `json:"isPublished,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *SaveTutorialRequest) ToDomain() (*domain.Tutorial, error) {
	category := domain.TutorialCategory(r.Category)
	if !domain.ValidTutorialCategory(category) {
		return nil, ErrInvalidCategory
	}

	difficulty := domain.TutorialDifficulty(r.Difficulty)
	if r.Difficulty == "" {
		difficulty = domain.DifficultyBeginner
	} else if !validDifficulty(difficulty) {
		return nil, ErrInvalidDifficulty
	}

	estimated := r.EstimatedTime
	if estimated <= 0 {
		estimated = domain.DefaultTutorialETA
	}

	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}

	return &domain.Tutorial{
		Title:         r.Title,
		Content:       r.Content,
		Category:      category,
		Tags:          types.StringArray(r.Tags),
		AuthorID:      r.AuthorID,
		Difficulty:    difficulty,
		EstimatedTime: estimated,
		Steps:         types.StringArray(r.Steps),
		IsPublished:   published,
	}, nil
}

// Response модели

// TutorialResponse ответ с данными материала
type TutorialResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	AuthorID      int64    `json:"authorId"`
	AuthorName    string   `json:"authorName"`
	Difficulty    string   `json:"difficulty"`
	EstimatedTime int      `json:"estimatedTime"`
	Steps         []string `json:"steps"`
	Views         int64    `json:"views"`
	Rating        float64  `json:"rating"`
	IsPublished   bool     `json:"isPublished"`

	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TutorialListResponse ответ со списком материалов
type TutorialListResponse struct {
	Tutorials []TutorialResponse `json:"tutorials"`
}

// AuthorsResponse список авторов материалов
type AuthorsResponse struct {
	Authors []string `json:"authors"`
}

// Методы конвертации

// FromDomainTutorial конвертирует domain модель в DTO
func FromDomainTutorial(t *domain.Tutorial) *TutorialResponse {
	if t == nil {
		return nil
	}

	return &TutorialResponse{
		ID:            t.ID,
		Title:         t.Title,
		Content:       t.Content,
		Category:      string(t.Category),
		Tags:          []string(t.Tags),
		AuthorID:      t.AuthorID,
		AuthorName:    t.AuthorName,
		Difficulty:    string(t.Difficulty),
		EstimatedTime: t.EstimatedTime,
		Steps:         []string(t.Steps),
		Views:         t.Views,
		Rating:        t.Rating,
		IsPublished:   t.IsPublished,
		PublishedAt:   t.PublishedAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// FromDomainTutorialList конвертирует список domain моделей в DTO
func FromDomainTutorialList(tutorials []*domain.Tutorial) *TutorialListResponse {
	items := make([]TutorialResponse, 0, len(tutorials))
	for _, t := range tutorials {
		items = append(items, *FromDomainTutorial(t))
	}
	return &TutorialListResponse{Tutorials: items}
}
