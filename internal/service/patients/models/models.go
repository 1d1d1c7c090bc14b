package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
)

var (
	// ErrInvalidBirthDate возвращается при некорректной дате рождения
	ErrInvalidBirthDate = errors.New("invalid birth date, expected YYYY-MM-DD")
)

// Request модели

// ListPatientsRequest запрос на получение списка пациентов
type ListPatientsRequest struct {
	Search *string `json:"search,omitempty"` // Поиск по имени/документу/телефону/email
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListPatientsRequest) ToDomainFilter() domain.PatientsFilter {
	return domain.PatientsFilter{Search: r.Search}
}

// SavePatientRequest запрос на создание или полное обновление пациента
type SavePatientRequest struct {
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Document         string  `json:"document"`
	Phone            string  `json:"phone"`
	Email            *string `json:"email,omitempty"`
	BirthDate        *string `json:"birthDate,omitempty"` // YYYY-MM-DD
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string `json:"emergencyPhone,omitempty"`
	MedicalHistory   *string `json:"medicalHistory,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *SavePatientRequest) ToDomain() (*domain.Patient, error) {
	p := &domain.Patient{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Document:         r.Document,
		Phone:            r.Phone,
		Email:            r.Email,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		EmergencyPhone:   r.EmergencyPhone,
		MedicalHistory:   r.MedicalHistory,
		Allergies:        r.Allergies,
	}

	if r.BirthDate != nil && *r.BirthDate != "" {
		birthDate, err := time.Parse(domain.DateFormat, *r.BirthDate)
		if err != nil {
			return nil, ErrInvalidBirthDate
		}
		p.BirthDate = &birthDate
	}

	return p, nil
}

// Response модели

// PatientResponse ответ с данными пациента
type PatientResponse struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Document         string  `json:"document"`
	Phone            string  `json:"phone"`
	Email            *string `json:"email,omitempty"`
	BirthDate        *string `json:"birthDate,omitempty"` // "1985-07-12"
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string `json:"emergencyPhone,omitempty"`
	MedicalHistory   *string `json:"medicalHistory,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PatientListResponse ответ со списком пациентов
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}

// Методы конвертации

// FromDomainPatient конвертирует domain модель в DTO
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	if p == nil {
		return nil
	}

	resp := &PatientResponse{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Document:         p.Document,
		Phone:            p.Phone,
		Email:            p.Email,
		Address:          p.Address,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
		MedicalHistory:   p.MedicalHistory,
		Allergies:        p.Allergies,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	if p.BirthDate != nil {
		birthDate := p.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &birthDate
	}

	return resp
}

// FromDomainPatientList конвертирует список domain моделей в DTO
func FromDomainPatientList(patients []*domain.Patient) *PatientListResponse {
	items := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		items = append(items, *FromDomainPatient(p))
	}
	return &PatientListResponse{Patients: items}
}
