package domain

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// StaffType represents the role of a staff member
type StaffType string

const (
	StaffDoctor         StaffType = "doctor"
	StaffNurse          StaffType = "nurse"
	StaffAdministrative StaffType = "administrative"
	StaffTechnician     StaffType = "technician"
	StaffReception      StaffType = "reception"
	StaffCallCenter     StaffType = "call_center"
)

// ValidStaffType reports whether t is a known staff type
func ValidStaffType(t StaffType) bool {
	switch t {
	case StaffDoctor, StaffNurse, StaffAdministrative, StaffTechnician, StaffReception, StaffCallCenter:
		return true
	}
	return false
}

// StaffStatus represents the employment status of a staff member
type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

// Staff represents a hospital employee
type Staff struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Position       string
	Department     string
	Specialty      *string
	Type           StaffType
	Status         StaffStatus
	HireDate       time.Time
	Avatar         *string
	Bio            *string
	Certifications types.StringArray
	Keywords       types.StringArray
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the display name of the staff member
func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

// IsActiveDoctor returns true if the member can receive appointments
func (s *Staff) IsActiveDoctor() bool {
	return s.Type == StaffDoctor && s.Status == StaffActive
}

// StaffFilter фильтр для выборки сотрудников
type StaffFilter struct {
	Search     *string      // Поиск по имени/специальности/отделению/ключевым словам
	Type       *StaffType   // Фильтр по роли (опционально)
	Department *string      // Фильтр по отделению (опционально)
	Status     *StaffStatus // Фильтр по статусу (опционально)
}

// StaffStats aggregated headcount summary
type StaffStats struct {
	Total  int64
	Active int64
	ByType map[StaffType]int64
}
