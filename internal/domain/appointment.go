package domain

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// ValidAppointmentStatus reports whether s is a known status value
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

// Appointment represents a patient visit scheduled with a doctor
type Appointment struct {
	ID              int64
	PatientID       int64
	DoctorID        int64
	AppointmentDate time.Time
	AppointmentTime types.TimeString
	Status          AppointmentStatus

	Notes     *string
	Diagnosis *string
	Treatment *string

	// Denormalized data for list views
	PatientFirstName string
	PatientLastName  string
	PatientDocument  string
	PatientPhone     string
	DoctorFirstName  string
	DoctorLastName   string
	DoctorSpecialty  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentCancelled
}

// AppointmentsFilter фильтр для выборки записей на приём
type AppointmentsFilter struct {
	DoctorID  *int64             // Фильтр по врачу (опционально)
	Specialty *string            // Подстрока специальности врача (опционально)
	Date      *time.Time         // Конкретная дата (опционально)
	Status    *AppointmentStatus // Фильтр по статусу (опционально, nil - все)
}
