package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var (
	// ErrInvalidType возвращается при некорректном типе напоминания
	ErrInvalidType = errors.New("invalid reminder type")

	// ErrInvalidStatus возвращается при некорректном статусе напоминания
	ErrInvalidStatus = errors.New("invalid reminder status")

	// ErrInvalidPriority возвращается при некорректном приоритете
	ErrInvalidPriority = errors.New("invalid reminder priority")

	// ErrInvalidDueDate возвращается при некорректном сроке
	ErrInvalidDueDate = errors.New("invalid due date, expected YYYY-MM-DD")

	// ErrInvalidDueTime возвращается при некорректном времени срока
	ErrInvalidDueTime = errors.New("invalid due time, expected HH:MM")
)

func validPriority(p domain.Priority) bool {
	switch p {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent:
		return true
	}
	return false
}

func validStatus(s domain.ReminderStatus) bool {
	switch s {
	case domain.ReminderPending, domain.ReminderCompleted, domain.ReminderOverdue:
		return true
	}
	return false
}

// Request модели

// ListRemindersRequest запрос на получение списка напоминаний
type ListRemindersRequest struct {
	Status     *string `json:"status,omitempty"`     // Статус; "all" и пусто - без фильтра
	Priority   *string `json:"priority,omitempty"`   // Фильтр по приоритету
	AssignedTo *int64  `json:"assignedTo,omitempty"` // Фильтр по исполнителю
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRemindersRequest) ToDomainFilter() (domain.RemindersFilter, error) {
	filter := domain.RemindersFilter{AssignedTo: r.AssignedTo}

	// "all" означает отсутствие фильтра по статусу
	if r.Status != nil && *r.Status != "" && *r.Status != "all" {
		status := domain.ReminderStatus(*r.Status)
		if !validStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if r.Priority != nil && *r.Priority != "" {
		priority := domain.Priority(*r.Priority)
		if !validPriority(priority) {
			return filter, ErrInvalidPriority
		}
		filter.Priority = &priority
	}

	return filter, nil
}

// SaveReminderRequest запрос на создание или полное обновление напоминания
type SaveReminderRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"dueDate"` // YYYY-MM-DD
	DueTime     *string `json:"dueTime,omitempty"`
	AssignedTo  *int64  `json:"assignedTo,omitempty"`
	CreatedBy   int64   `json:"createdBy"`
	Status      *string `json:"status,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *SaveReminderRequest) ToDomain() (*domain.Reminder, error) {
	remType := domain.ReminderType(r.Type)
	if !domain.ValidReminderType(remType) {
		return nil, ErrInvalidType
	}

	priority := domain.Priority(r.Priority)
	if r.Priority == "" {
		priority = domain.PriorityMedium
	} else if !validPriority(priority) {
		return nil, ErrInvalidPriority
	}

	dueDate, err := time.Parse(domain.DateFormat, r.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	status := domain.ReminderPending
	if r.Status != nil && *r.Status != "" {
		status = domain.ReminderStatus(*r.Status)
		if !validStatus(status) {
			return nil, ErrInvalidStatus
		}
	}

	rem := &domain.Reminder{
		Title:       r.Title,
		Description: r.Description,
		Type:        remType,
		Priority:    priority,
		DueDate:     dueDate,
		AssignedTo:  r.AssignedTo,
		CreatedBy:   r.CreatedBy,
		Status:      status,
	}

	if r.DueTime != nil && *r.DueTime != "" {
		ts, err := types.NewTimeStringFromString(*r.DueTime)
		if err != nil {
			return nil, ErrInvalidDueTime
		}
		rem.DueTime = &ts
	}

	return rem, nil
}

// Response модели

// ReminderResponse ответ с данными напоминания
type ReminderResponse struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	Type         string     `json:"type"`
	Priority     string     `json:"priority"`
	DueDate      string     `json:"dueDate"` // "2025-09-20"
	DueTime      *string    `json:"dueTime,omitempty"`
	AssignedTo   *int64     `json:"assignedTo,omitempty"`
	AssigneeName *string    `json:"assigneeName,omitempty"`
	CreatedBy    int64      `json:"createdBy"`
	CreatorName  string     `json:"creatorName"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReminderListResponse ответ со списком напоминаний
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// Методы конвертации

// FromDomainReminder конвертирует domain модель в DTO
func FromDomainReminder(rem *domain.Reminder) *ReminderResponse {
	if rem == nil {
		return nil
	}

	resp := &ReminderResponse{
		ID:           rem.ID,
		Title:        rem.Title,
		Description:  rem.Description,
		Type:         string(rem.Type),
		Priority:     string(rem.Priority),
		DueDate:      rem.DueDate.Format(domain.DateFormat),
		AssignedTo:   rem.AssignedTo,
		AssigneeName: rem.AssigneeName,
		CreatedBy:    rem.CreatedBy,
		CreatorName:  rem.CreatorName,
		Status:       string(rem.Status),
		CompletedAt:  rem.CompletedAt,
		CreatedAt:    rem.CreatedAt,
		UpdatedAt:    rem.UpdatedAt,
	}

	if rem.DueTime != nil {
		dueTime := rem.DueTime.String()
		resp.DueTime = &dueTime
	}

	return resp
}

// FromDomainReminderList конвертирует список domain моделей в DTO
func FromDomainReminderList(reminders []*domain.Reminder) *ReminderListResponse {
	items := make([]ReminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		items = append(items, *FromDomainReminder(rem))
	}
	return &ReminderListResponse{Reminders: items}
}
