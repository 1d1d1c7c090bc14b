package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var (
	// ErrInvalidType возвращается при некорректном типе события
	ErrInvalidType = errors.New("invalid event type")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")

	// ErrInvalidRange возвращается, когда конец события раньше начала
	ErrInvalidRange = errors.New("end date is before start date")
)

// Request модели

// ListEventsRequest запрос на получение событий календаря
type ListEventsRequest struct {
	Type      *string `json:"type,omitempty"`      // Фильтр по типу события
	Attendee  *string `json:"attendee,omitempty"`  // Подстрока имени участника
	StartDate *string `json:"startDate,omitempty"` // Не раньше даты, YYYY-MM-DD
	EndDate   *string `json:"endDate,omitempty"`   // Не позже даты, YYYY-MM-DD
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListEventsRequest) ToDomainFilter() (domain.CalendarFilter, error) {
	filter := domain.CalendarFilter{Attendee: r.Attendee}

	if r.Type != nil && *r.Type != "" {
		eventType := domain.EventType(*r.Type)
		if !domain.ValidEventType(eventType) {
			return filter, ErrInvalidType
		}
		filter.Type = &eventType
	}

	if r.StartDate != nil && *r.StartDate != "" {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &startDate
	}

	if r.EndDate != nil && *r.EndDate != "" {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &endDate
	}

	return filter, nil
}

// SaveEventRequest запрос на создание или полное обновление события
type SaveEventRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	StartDate   string   `json:"startDate"` // YYYY-MM-DD
	EndDate     string   `json:"endDate"`   // YYYY-MM-DD
	StartTime   *string  `json:"startTime,omitempty"`
	EndTime     *string  `json:"endTime,omitempty"`
	Type        string   `json:"type"`
	Location    *string  `json:"location,omitempty"`
	Attendees   []string `json:"attendees"`
	CreatedBy   int64    `json:"createdBy"`
	IsAllDay    bool     `json:"isAllDay"`
	Color       *string  `json:"color,omitempty"`
}

// ToDomain конвертирует request в domain модель.
// Событие на весь день теряет времена; пустой цвет заменяется дефолтным.
func (r *SaveEventRequest) ToDomain() (*domain.CalendarEvent, error) {
	eventType := domain.EventType(r.Type)
	if !domain.ValidEventType(eventType) {
		return nil, ErrInvalidType
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if endDate.Before(startDate) {
		return nil, ErrInvalidRange
	}

	event := &domain.CalendarEvent{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        eventType,
		Location:    r.Location,
		Attendees:   types.StringArray(r.Attendees),
		CreatedBy:   r.CreatedBy,
		IsAllDay:    r.IsAllDay,
		Color:       domain.DefaultEventColor,
	}

	if r.Color != nil && *r.Color != "" {
		event.Color = *r.Color
	}

	if !r.IsAllDay {
		if r.StartTime != nil && *r.StartTime != "" {
			ts, err := types.NewTimeStringFromString(*r.StartTime)
			if err != nil {
				return nil, ErrInvalidTime
			}
			event.StartTime = &ts
		}
		if r.EndTime != nil && *r.EndTime != "" {
			ts, err := types.NewTimeStringFromString(*r.EndTime)
			if err != nil {
				return nil, ErrInvalidTime
			}
			event.EndTime = &ts
		}
	}

	return event, nil
}

// Response модели

// EventResponse ответ с данными события
type EventResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	StartDate   string   `json:"startDate"` // "2025-11-03"
	EndDate     string   `json:"endDate"`
	StartTime   *string  `json:"startTime,omitempty"` // "14:00"
	EndTime     *string  `json:"endTime,omitempty"`
	Type        string   `json:"type"`
	Location    *string  `json:"location,omitempty"`
	Attendees   []string `json:"attendees"`
	CreatedBy   int64    `json:"createdBy"`
	CreatorName string   `json:"creatorName"`
	IsAllDay    bool     `json:"isAllDay"`
	Color       string   `json:"color"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EventListResponse ответ со списком событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// Методы конвертации

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.CalendarEvent) *EventResponse {
	if e == nil {
		return nil
	}

	resp := &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate.Format(domain.DateFormat),
		EndDate:     e.EndDate.Format(domain.DateFormat),
		Type:        string(e.Type),
		Location:    e.Location,
		Attendees:   []string(e.Attendees),
		CreatedBy:   e.CreatedBy,
		CreatorName: e.CreatorName,
		IsAllDay:    e.IsAllDay,
		Color:       e.Color,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if e.StartTime != nil {
		startTime := e.StartTime.String()
		resp.StartTime = &startTime
	}
	if e.EndTime != nil {
		endTime := e.EndTime.String()
		resp.EndTime = &endTime
	}

	return resp
}

// FromDomainEventList конвертирует список domain моделей в DTO
func FromDomainEventList(events []*domain.CalendarEvent) *EventListResponse {
	items := make([]EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, *FromDomainEvent(e))
	}
	return &EventListResponse{Events: items}
}
