package book_appointment

import (
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	bookAppointment "github.com/m04kA/HMA-AdminService/internal/usecase/book_appointment"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// PatientData данные пациента в HTTP запросе
type PatientData struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Document  string  `json:"document"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
}

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	Patient  PatientData `json:"patient"`
	DoctorID int64       `json:"doctorId"`
	Date     string      `json:"date"` // "2026-09-15"
	Time     string      `json:"time"` // "10:30"
	Notes    *string     `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PatientID       int64   `json:"patientId"`
	DoctorID        int64   `json:"doctorId"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	PatientName     string  `json:"patientName"`
	PatientDocument string  `json:"patientDocument"`
	PatientPhone    string  `json:"patientPhone"`
	DoctorName      string  `json:"doctorName"`
	DoctorSpecialty *string `json:"doctorSpecialty,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		Patient: bookAppointment.PatientData{
			FirstName: r.Patient.FirstName,
			LastName:  r.Patient.LastName,
			Document:  r.Patient.Document,
			Phone:     r.Patient.Phone,
			Email:     r.Patient.Email,
		},
		DoctorID: r.DoctorID,
		Date:     date,
		Time:     slotTime,
		Notes:    r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		PatientID:       resp.PatientID,
		DoctorID:        resp.DoctorID,
		Date:            resp.AppointmentDate.Format(domain.DateFormat),
		Time:            resp.AppointmentTime.String(),
		Status:          resp.Status,
		Notes:           resp.Notes,
		PatientName:     resp.PatientName,
		PatientDocument: resp.PatientDocument,
		PatientPhone:    resp.PatientPhone,
		DoctorName:      resp.DoctorName,
		DoctorSpecialty: resp.DoctorSpecialty,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
