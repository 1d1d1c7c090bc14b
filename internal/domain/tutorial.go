package domain

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// TutorialCategory represents the knowledge-base section of a tutorial
type TutorialCategory string

const (
	TutorialProcedures TutorialCategory = "procedures"
	TutorialSoftware   TutorialCategory = "software"
	TutorialEquipment  TutorialCategory = "equipment"
	TutorialPolicies   TutorialCategory = "policies"
	TutorialEmergency  TutorialCategory = "emergency"
)

// ValidTutorialCategory reports whether c is a known category
func ValidTutorialCategory(c TutorialCategory) bool {
	switch c {
	case TutorialProcedures, TutorialSoftware, TutorialEquipment, TutorialPolicies, TutorialEmergency:
		return true
	}
	return false
}

// TutorialDifficulty represents the expected reader level
type TutorialDifficulty string

const (
	DifficultyBeginner     TutorialDifficulty = "beginner"
	DifficultyIntermediate TutorialDifficulty = "intermediate"
	DifficultyAdvanced     TutorialDifficulty = "advanced"
)

// Tutorial represents a knowledge-base article with ordered steps
type Tutorial struct {
	ID            int64
	Title         string
	Content       string
	Category      TutorialCategory
	Tags          types.StringArray
	AuthorID      int64
	Difficulty    TutorialDifficulty
	EstimatedTime int // минуты
	Steps         types.StringArray
	Views         int64
	Rating        float64
	IsPublished   bool
	PublishedAt   time.Time

	// Denormalized author display name for responses
	AuthorName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TutorialsFilter фильтр для выборки обучающих материалов
type TutorialsFilter struct {
	Search        *string             // Поиск по заголовку/тексту/тегам
	Category      *TutorialCategory   // Фильтр по категории (опционально)
	Difficulty    *TutorialDifficulty // Фильтр по сложности (опционально)
	Author        *string             // Отображаемое имя автора (опционально)
	PublishedOnly bool                // Только опубликованные
}
