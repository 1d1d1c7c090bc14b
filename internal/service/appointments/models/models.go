package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе записи
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	DoctorID  *int64  `json:"doctorId,omitempty"`  // Фильтр по врачу (опционально)
	Specialty *string `json:"specialty,omitempty"` // Подстрока специальности (опционально)
	Date      *string `json:"date,omitempty"`      // Дата YYYY-MM-DD (опционально)
	Status    *string `json:"status,omitempty"`    // Статус; "all" и пусто - без фильтра
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		DoctorID:  r.DoctorID,
		Specialty: r.Specialty,
	}

	if r.Date != nil && *r.Date != "" {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	// "all" означает отсутствие фильтра по статусу
	if r.Status != nil && *r.Status != "" && *r.Status != "all" {
		status := domain.AppointmentStatus(*r.Status)
		if !domain.ValidAppointmentStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateAppointmentRequest запрос на обновление записи
type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointmentDate,omitempty"` // YYYY-MM-DD
	AppointmentTime *string `json:"appointmentTime,omitempty"` // HH:MM
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Diagnosis       *string `json:"diagnosis,omitempty"`
	Treatment       *string `json:"treatment,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи на приём
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PatientID       int64   `json:"patientId"`
	DoctorID        int64   `json:"doctorId"`
	AppointmentDate string  `json:"appointmentDate"` // "2025-10-15"
	AppointmentTime string  `json:"appointmentTime"` // "10:30"
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	Diagnosis       *string `json:"diagnosis,omitempty"`
	Treatment       *string `json:"treatment,omitempty"`

	// Денормализованные данные
	PatientName     string  `json:"patientName"`
	PatientDocument string  `json:"patientDocument"`
	PatientPhone    string  `json:"patientPhone"`
	DoctorName      string  `json:"doctorName"`
	DoctorSpecialty *string `json:"doctorSpecialty,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: a.AppointmentTime.String(),
		Status:          string(a.Status),
		Notes:           a.Notes,
		Diagnosis:       a.Diagnosis,
		Treatment:       a.Treatment,
		PatientName:     a.PatientFirstName + " " + a.PatientLastName,
		PatientDocument: a.PatientDocument,
		PatientPhone:    a.PatientPhone,
		DoctorName:      a.DoctorFirstName + " " + a.DoctorLastName,
		DoctorSpecialty: a.DoctorSpecialty,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		items = append(items, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: items}
}
