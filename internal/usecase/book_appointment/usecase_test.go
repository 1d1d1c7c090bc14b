package book_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	appointmentRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/appointment"
	patientRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/patient"
	staffRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/staff"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var _ AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockAppointmentRepo struct {
	CreateFunc          func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Appointment, error)
	ListActiveTimesFunc func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appt)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *mockAppointmentRepo) ListActiveTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
	if m.ListActiveTimesFunc != nil {
		return m.ListActiveTimesFunc(ctx, doctorID, date)
	}
	return nil, nil
}

var _ PatientRepository = (*mockPatientRepo)(nil)

type mockPatientRepo struct {
	GetByDocumentFunc func(ctx context.Context, document string) (*domain.Patient, error)
	CreateFunc        func(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	UpdateContactFunc func(ctx context.Context, id int64, firstName, lastName, phone string, email *string) error

	CreateCalls        int
	UpdateContactCalls int
}

func (m *mockPatientRepo) GetByDocument(ctx context.Context, document string) (*domain.Patient, error) {
	if m.GetByDocumentFunc != nil {
		return m.GetByDocumentFunc(ctx, document)
	}
	return nil, patientRepo.ErrPatientNotFound
}

func (m *mockPatientRepo) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

func (m *mockPatientRepo) UpdateContact(ctx context.Context, id int64, firstName, lastName, phone string, email *string) error {
	m.UpdateContactCalls++
	if m.UpdateContactFunc != nil {
		return m.UpdateContactFunc(ctx, id, firstName, lastName, phone, email)
	}
	return nil
}

var _ StaffRepository = (*mockStaffRepo)(nil)

type mockStaffRepo struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Staff, error)
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

var _ TransactionManager = (*mockTxManager)(nil)

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func activeDoctor(id int64) *domain.Staff {
	return &domain.Staff{
		ID:        id,
		FirstName: "Anna",
		LastName:  "Petrova",
		Type:      domain.StaffDoctor,
		Status:    domain.StaffActive,
	}
}

func validRequest() *Request {
	return &Request{
		Patient: PatientData{
			FirstName: "Ivan",
			LastName:  "Sidorov",
			Document:  "DOC-123",
			Phone:     "+7 900 000-00-00",
		},
		DoctorID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:     types.TimeString("10:30"),
	}
}

func TestExecute_CreatesNewPatientAndAppointment(t *testing.T) {
	patients := &mockPatientRepo{
		GetByDocumentFunc: func(ctx context.Context, document string) (*domain.Patient, error) {
			return nil, patientRepo.ErrPatientNotFound
		},
		CreateFunc: func(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
			created := *p
			created.ID = 42
			return &created, nil
		},
	}

	appointments := &mockAppointmentRepo{
		CreateFunc: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			created := *appt
			created.ID = 7
			return &created, nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return &domain.Appointment{
				ID:               id,
				PatientID:        42,
				DoctorID:         1,
				AppointmentDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
				AppointmentTime:  types.TimeString("10:30"),
				Status:           domain.AppointmentConfirmed,
				PatientFirstName: "Ivan",
				PatientLastName:  "Sidorov",
				DoctorFirstName:  "Anna",
				DoctorLastName:   "Petrova",
			}, nil
		},
	}

	staff := &mockStaffRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Staff, error) {
			return activeDoctor(id), nil
		},
	}

	uc := NewUseCase(appointments, patients, staff, &mockTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, int64(42), resp.PatientID)
	assert.Equal(t, string(domain.AppointmentConfirmed), resp.Status)
	assert.Equal(t, "Ivan Sidorov", resp.PatientName)
	assert.Equal(t, 1, patients.CreateCalls)
	assert.Equal(t, 0, patients.UpdateContactCalls)
}

func TestExecute_ReusesPatientByDocument(t *testing.T) {
	patients := &mockPatientRepo{
		GetByDocumentFunc: func(ctx context.Context, document string) (*domain.Patient, error) {
			return &domain.Patient{ID: 42, Document: document}, nil
		},
	}

	appointments := &mockAppointmentRepo{
		CreateFunc: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			assert.Equal(t, int64(42), appt.PatientID)
			created := *appt
			created.ID = 8
			return &created, nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return &domain.Appointment{ID: id, PatientID: 42}, nil
		},
	}

	staff := &mockStaffRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Staff, error) {
			return activeDoctor(id), nil
		},
	}

	uc := NewUseCase(appointments, patients, staff, &mockTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.PatientID)
	// Существующая карточка обновляется, новая не создается
	assert.Equal(t, 0, patients.CreateCalls)
	assert.Equal(t, 1, patients.UpdateContactCalls)
}

func TestExecute_SlotTaken(t *testing.T) {
	patients := &mockPatientRepo{
		CreateFunc: func(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
			created := *p
			created.ID = 42
			return &created, nil
		},
	}

	appointments := &mockAppointmentRepo{
		ListActiveTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return []types.TimeString{"09:00", "10:30"}, nil
		},
	}

	staff := &mockStaffRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Staff, error) {
			return activeDoctor(id), nil
		},
	}

	uc := NewUseCase(appointments, patients, staff, &mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SlotTakenOnInsertRace(t *testing.T) {
	// Конкурент успел вставить запись между проверкой и вставкой:
	// уникальный индекс возвращает конфликт из репозитория
	patients := &mockPatientRepo{
		CreateFunc: func(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
			created := *p
			created.ID = 42
			return &created, nil
		},
	}

	appointments := &mockAppointmentRepo{
		CreateFunc: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrSlotTaken
		},
	}

	staff := &mockStaffRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Staff, error) {
			return activeDoctor(id), nil
		},
	}

	uc := NewUseCase(appointments, patients, staff, &mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	staff := &mockStaffRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Staff, error) {
			return nil, staffRepo.ErrStaffNotFound
		},
	}

	uc := NewUseCase(&mockAppointmentRepo{}, &mockPatientRepo{}, staff, &mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_DoctorNotAvailable(t *testing.T) {
	cases := []struct {
		name   string
		doctor *domain.Staff
	}{
		{
			name:   "inactive doctor",
			doctor: &domain.Staff{ID: 1, Type: domain.StaffDoctor, Status: domain.StaffInactive},
		},
		{
			name:   "nurse",
			doctor: &domain.Staff{ID: 1, Type: domain.StaffNurse, Status: domain.StaffActive},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			staff := &mockStaffRepo{
				GetByIDFunc: func(ctx context.Context, id int64) (*domain.Staff, error) {
					return tc.doctor, nil
				},
			}

			uc := NewUseCase(&mockAppointmentRepo{}, &mockPatientRepo{}, staff, &mockTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrDoctorNotAvailable)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing first name", func(req *Request) { req.Patient.FirstName = "" }},
		{"missing document", func(req *Request) { req.Patient.Document = "" }},
		{"missing phone", func(req *Request) { req.Patient.Phone = "" }},
		{"bad doctor id", func(req *Request) { req.DoctorID = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"empty time", func(req *Request) { req.Time = "" }},
		{"malformed time", func(req *Request) { req.Time = "25:99" }},
	}

	uc := NewUseCase(&mockAppointmentRepo{}, &mockPatientRepo{}, &mockStaffRepo{}, &mockTxManager{}, nopLogger{})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
