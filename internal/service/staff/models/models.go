package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var (
	// ErrInvalidType возвращается при некорректной роли сотрудника
	ErrInvalidType = errors.New("invalid staff type")

	// ErrInvalidStatus возвращается при некорректном статусе сотрудника
	ErrInvalidStatus = errors.New("invalid staff status")

	// ErrInvalidHireDate возвращается при некорректной дате найма
	ErrInvalidHireDate = errors.New("invalid hire date, expected YYYY-MM-DD")
)

// Request модели

// ListStaffRequest запрос на получение списка сотрудников
type ListStaffRequest struct {
	Search     *string `json:"search,omitempty"`     // Поиск по имени/специальности/отделению/ключевым словам
	Type       *string `json:"type,omitempty"`       // Фильтр по роли
	Department *string `json:"department,omitempty"` // Фильтр по отделению
	Status     *string `json:"status,omitempty"`     // Фильтр по статусу
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListStaffRequest) ToDomainFilter() (domain.StaffFilter, error) {
	filter := domain.StaffFilter{
		Search:     r.Search,
		Department: r.Department,
	}

	if r.Type != nil && *r.Type != "" {
		staffType := domain.StaffType(*r.Type)
		if !domain.ValidStaffType(staffType) {
			return filter, ErrInvalidType
		}
		filter.Type = &staffType
	}

	if r.Status != nil && *r.Status != "" {
		status := domain.StaffStatus(*r.Status)
		if status != domain.StaffActive && status != domain.StaffInactive {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// SaveStaffRequest запрос на создание или полное обновление сотрудника
type SaveStaffRequest struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Position       string   `json:"position"`
	Department     string   `json:"department"`
	Specialty      *string  `json:"specialty,omitempty"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	HireDate       string   `json:"hireDate"` // YYYY-MM-DD
	Avatar         *string  `json:"avatar,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	Certifications []string `json:"certifications"`
	Keywords       []string `json:"keywords"`
}

// ToDomain конвертирует request в domain модель
func (r *SaveStaffRequest) ToDomain() (*domain.Staff, error) {
	staffType := domain.StaffType(r.Type)
	if !domain.ValidStaffType(staffType) {
		return nil, ErrInvalidType
	}

	status := domain.StaffStatus(r.Status)
	if r.Status == "" {
		status = domain.StaffActive
	} else if status != domain.StaffActive && status != domain.StaffInactive {
		return nil, ErrInvalidStatus
	}

	hireDate, err := time.Parse(domain.DateFormat, r.HireDate)
	if err != nil {
		return nil, ErrInvalidHireDate
	}

	return &domain.Staff{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Position:       r.Position,
		Department:     r.Department,
		Specialty:      r.Specialty,
		Type:           staffType,
		Status:         status,
		HireDate:       hireDate,
		Avatar:         r.Avatar,
		Bio:            r.Bio,
		Certifications: types.StringArray(r.Certifications),
		Keywords:       types.StringArray(r.Keywords),
	}, nil
}

// Response модели

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID             int64    `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Position       string   `json:"position"`
	Department     string   `json:"department"`
	Specialty      *string  `json:"specialty,omitempty"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	HireDate       string   `json:"hireDate"` // "2020-03-01"
	Avatar         *string  `json:"avatar,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	Certifications []string `json:"certifications"`
	Keywords       []string `json:"keywords"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// StaffStatsResponse сводка по персоналу
type StaffStatsResponse struct {
	Total  int64            `json:"total"`
	Active int64            `json:"active"`
	ByType map[string]int64 `json:"byType"`
}

// DepartmentsResponse список отделений
type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}

// Методы конвертации

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}

	return &StaffResponse{
		ID:             s.ID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		Phone:          s.Phone,
		Position:       s.Position,
		Department:     s.Department,
		Specialty:      s.Specialty,
		Type:           string(s.Type),
		Status:         string(s.Status),
		HireDate:       s.HireDate.Format(domain.DateFormat),
		Avatar:         s.Avatar,
		Bio:            s.Bio,
		Certifications: []string(s.Certifications),
		Keywords:       []string(s.Keywords),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(staff []*domain.Staff) *StaffListResponse {
	items := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		items = append(items, *FromDomainStaff(s))
	}
	return &StaffListResponse{Staff: items}
}

// FromDomainStats конвертирует сводку в DTO
func FromDomainStats(stats *domain.StaffStats) *StaffStatsResponse {
	byType := make(map[string]int64, len(stats.ByType))
	for t, count := range stats.ByType {
		byType[string(t)] = count
	}
	return &StaffStatsResponse{
		Total:  stats.Total,
		Active: stats.Active,
		ByType: byType,
	}
}
