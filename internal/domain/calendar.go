package domain

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// EventType represents the kind of a calendar entry
type EventType string

const (
	EventMeeting     EventType = "meeting"
	EventTraining    EventType = "training"
	EventMaintenance EventType = "maintenance"
	EventGeneral     EventType = "event"
	EventHoliday     EventType = "holiday"
)

// ValidEventType reports whether t is a known event type
func ValidEventType(t EventType) bool {
	switch t {
	case EventMeeting, EventTraining, EventMaintenance, EventGeneral, EventHoliday:
		return true
	}
	return false
}

// CalendarEvent represents an entry of the shared hospital calendar
type CalendarEvent struct {
	ID          int64
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	Type        EventType
	Location    *string
	Attendees   types.StringArray
	CreatedBy   int64
	IsAllDay    bool
	Color       string

	// Denormalized creator display name for responses
	CreatorName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarFilter фильтр для выборки событий календаря
type CalendarFilter struct {
	Type      *EventType // Фильтр по типу (опционально)
	Attendee  *string    // Подстрока имени участника (опционально)
	StartDate *time.Time // События, начинающиеся не раньше даты (опционально)
	EndDate   *time.Time // События, заканчивающиеся не позже даты (опционально)
}
