package domain

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// BlogCategory represents the category of an internal announcement
type BlogCategory string

const (
	BlogAnnouncement BlogCategory = "announcement"
	BlogNews         BlogCategory = "news"
	BlogPolicy       BlogCategory = "policy"
	BlogEvent        BlogCategory = "event"
)

// ValidBlogCategory reports whether c is a known category
func ValidBlogCategory(c BlogCategory) bool {
	switch c {
	case BlogAnnouncement, BlogNews, BlogPolicy, BlogEvent:
		return true
	}
	return false
}

// BlogStatus represents the publication state of a post
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

// Priority общий уровень важности (посты, напоминания)
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// PriorityRank returns the sort weight of a priority, higher is more urgent
func PriorityRank(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// BlogPost represents an internal announcement or news post
type BlogPost struct {
	ID          int64
	Title       string
	Content     string
	Excerpt     string
	AuthorID    int64
	Category    BlogCategory
	Tags        types.StringArray
	Status      BlogStatus
	Priority    Priority
	PublishedAt *time.Time

	// Denormalized author display name for responses
	AuthorName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPublished returns true if the post is visible to readers
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogPublished
}

// BlogFilter фильтр для выборки постов
type BlogFilter struct {
	Search   *string       // Поиск по заголовку/тексту/тегам
	Category *BlogCategory // Фильтр по категории (опционально)
	Author   *string       // Отображаемое имя автора (опционально)
	Status   *BlogStatus   // Фильтр по статусу (опционально, nil - все)
}
