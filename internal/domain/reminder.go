package domain

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// ReminderType represents the kind of a staff reminder
type ReminderType string

const (
	ReminderTask        ReminderType = "task"
	ReminderMeeting     ReminderType = "meeting"
	ReminderDeadline    ReminderType = "deadline"
	ReminderMaintenance ReminderType = "maintenance"
	ReminderGeneral     ReminderType = "general"
)

// ValidReminderType reports whether t is a known reminder type
func ValidReminderType(t ReminderType) bool {
	switch t {
	case ReminderTask, ReminderMeeting, ReminderDeadline, ReminderMaintenance, ReminderGeneral:
		return true
	}
	return false
}

// ReminderStatus represents the lifecycle state of a reminder
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
	ReminderOverdue   ReminderStatus = "overdue"
)

// Reminder represents an internal task or reminder for staff
type Reminder struct {
	ID          int64
	Title       string
	Description *string
	Type        ReminderType
	Priority    Priority
	DueDate     time.Time
	DueTime     *types.TimeString
	AssignedTo  *int64
	CreatedBy   int64
	Status      ReminderStatus
	CompletedAt *time.Time

	// Denormalized display names for responses
	AssigneeName *string
	CreatorName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the reminder has been completed
func (r *Reminder) IsCompleted() bool {
	return r.Status == ReminderCompleted
}

// RemindersFilter фильтр для выборки напоминаний
type RemindersFilter struct {
	Status     *ReminderStatus // Фильтр по статусу (опционально, nil - все)
	Priority   *Priority       // Фильтр по приоритету (опционально)
	AssignedTo *int64          // Фильтр по исполнителю (опционально)
}
