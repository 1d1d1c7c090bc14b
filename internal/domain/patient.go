package domain

import "time"

// Patient represents a registered patient
type Patient struct {
	ID               int64
	FirstName        string
	LastName         string
	Document         string // National ID, passport or similar
	Phone            string
	Email            *string
	BirthDate        *time.Time
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	MedicalHistory   *string
	Allergies        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FullName returns the display name of the patient
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PatientsFilter фильтр для выборки пациентов
type PatientsFilter struct {
	Search *string // Поиск по имени/документу/телефону/email
}
