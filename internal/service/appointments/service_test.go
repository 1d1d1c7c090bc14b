package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	appointmentRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/appointment"
	"github.com/m04kA/HMA-AdminService/internal/service/appointments/models"
	"github.com/m04kA/HMA-AdminService/pkg/ptr"
)

var _ AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockAppointmentRepo struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Appointment, error)
	ListFunc         func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateFunc       func(ctx context.Context, id int64, fields appointmentRepo.UpdateFields) error
	UpdateStatusFunc func(ctx context.Context, id int64, status domain.AppointmentStatus) error
	DeleteFunc       func(ctx context.Context, id int64) error

	UpdateStatusCalls int
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return sampleAppointment(id), nil
}

func (m *mockAppointmentRepo) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) Update(ctx context.Context, id int64, fields appointmentRepo.UpdateFields) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	m.UpdateStatusCalls++
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:               id,
		PatientID:        7,
		DoctorID:         3,
		AppointmentDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime:  "10:30",
		Status:           domain.AppointmentConfirmed,
		PatientFirstName: "Анна",
		PatientLastName:  "Смирнова",
		PatientDocument:  "DOC-00000007",
		PatientPhone:     "+7 900 000-00-07",
		DoctorFirstName:  "Пётр",
		DoctorLastName:   "Иванов",
		DoctorSpecialty:  ptr.Ptr("Кардиология"),
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "2026-09-15", resp.AppointmentDate)
	assert.Equal(t, "10:30", resp.AppointmentTime)
	assert.Equal(t, "Анна Смирнова", resp.PatientName)
	assert.Equal(t, "Пётр Иванов", resp.DoctorName)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_StatusAllMeansNoFilter(t *testing.T) {
	var gotFilter domain.AppointmentsFilter
	repo := &mockAppointmentRepo{
		ListFunc: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			gotFilter = filter
			return []*domain.Appointment{sampleAppointment(1)}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		DoctorID: ptr.Ptr(int64(3)),
		Status:   ptr.Ptr("all"),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 1)
	require.NotNil(t, gotFilter.DoctorID)
	assert.Equal(t, int64(3), *gotFilter.DoctorID)
	assert.Nil(t, gotFilter.Status)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("done"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_InvalidDate(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Date: ptr.Ptr("15.09.2026"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	var gotFields appointmentRepo.UpdateFields
	repo := &mockAppointmentRepo{
		UpdateFunc: func(ctx context.Context, id int64, fields appointmentRepo.UpdateFields) error {
			gotFields = fields
			return nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 5, &models.UpdateAppointmentRequest{
		AppointmentDate: ptr.Ptr("2026-09-20"),
		AppointmentTime: ptr.Ptr("11:00"),
		Diagnosis:       ptr.Ptr("ОРВИ"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	require.NotNil(t, gotFields.AppointmentDate)
	assert.Equal(t, "2026-09-20", *gotFields.AppointmentDate)
	require.NotNil(t, gotFields.AppointmentTime)
	assert.Equal(t, "11:00", gotFields.AppointmentTime.String())
	require.NotNil(t, gotFields.Diagnosis)
	assert.Equal(t, "ОРВИ", *gotFields.Diagnosis)
	assert.Nil(t, gotFields.Status)
}

func TestUpdate_SlotTaken(t *testing.T) {
	repo := &mockAppointmentRepo{
		UpdateFunc: func(ctx context.Context, id int64, fields appointmentRepo.UpdateFields) error {
			return appointmentRepo.ErrSlotTaken
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 5, &models.UpdateAppointmentRequest{
		AppointmentTime: ptr.Ptr("11:00"),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdate_InvalidInput(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.UpdateAppointmentRequest
	}{
		{"bad date", &models.UpdateAppointmentRequest{AppointmentDate: ptr.Ptr("20.09.2026")}},
		{"bad time", &models.UpdateAppointmentRequest{AppointmentTime: ptr.Ptr("25:99")}},
		{"bad status", &models.UpdateAppointmentRequest{Status: ptr.Ptr("done")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), 5, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCancel(t *testing.T) {
	repo := &mockAppointmentRepo{
		UpdateStatusFunc: func(ctx context.Context, id int64, status domain.AppointmentStatus) error {
			assert.Equal(t, domain.AppointmentCancelled, status)
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			a := sampleAppointment(id)
			a.Status = domain.AppointmentCancelled
			return a, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, string(domain.AppointmentCancelled), resp.Status)
	assert.Equal(t, 1, repo.UpdateStatusCalls)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	// Повторная отмена успешна и ничего не меняет
	repo := &mockAppointmentRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			a := sampleAppointment(id)
			a.Status = domain.AppointmentCancelled
			return a, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp1, err := svc.Cancel(context.Background(), 5)
	require.NoError(t, err)
	resp2, err := svc.Cancel(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, resp1.Status, resp2.Status)
	assert.Equal(t, 2, repo.UpdateStatusCalls)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{
		UpdateStatusFunc: func(ctx context.Context, id int64, status domain.AppointmentStatus) error {
			return appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, nopLogger{})
	assert.NoError(t, svc.Delete(context.Background(), 5))
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	repo := &mockAppointmentRepo{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return errors.New("connection refused")
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInternal)
}
