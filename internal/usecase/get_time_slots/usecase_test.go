package get_time_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	staffRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/staff"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var _ AppointmentRepository = (*mockAppointmentRepo)(nil)

type mockAppointmentRepo struct {
	ListActiveTimesFunc func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error)
}

func (m *mockAppointmentRepo) ListActiveTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
	if m.ListActiveTimesFunc != nil {
		return m.ListActiveTimesFunc(ctx, doctorID, date)
	}
	return nil, nil
}

var _ StaffRepository = (*mockStaffRepo)(nil)

type mockStaffRepo struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Staff, error)
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &domain.Staff{ID: id, Type: domain.StaffDoctor, Status: domain.StaffActive}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_FullGridWhenNoAppointments(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[len(resp.Slots)-1].Time)

	for i, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s must be available", slot.Time)
		if i > 0 {
			assert.True(t, resp.Slots[i-1].Time.IsBefore(slot.Time), "slots must be ascending")
		}
	}
}

func TestExecute_TakenSlotsMarkedUnavailable(t *testing.T) {
	appointments := &mockAppointmentRepo{
		ListActiveTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return []types.TimeString{"08:00", "12:30"}, nil
		},
	}

	uc := NewUseCase(appointments, &mockStaffRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	byTime := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		byTime[slot.Time] = slot.Available
	}

	assert.False(t, byTime["08:00"])
	assert.False(t, byTime["12:30"])
	assert.True(t, byTime["08:30"])
	assert.True(t, byTime["12:00"])
}

func TestExecute_TimeWithinSlotDoesNotBlockGrid(t *testing.T) {
	// Занятость определяется точным совпадением времени: запись на 10:15
	// (вне сетки) не закрывает ни 10:00, ни 10:30
	appointments := &mockAppointmentRepo{
		ListActiveTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return []types.TimeString{"10:15"}, nil
		},
	}

	uc := NewUseCase(appointments, &mockStaffRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_PastDateStillGetsGrid(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: 1,
		Date:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.SlotsPerDay)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	staff := &mockStaffRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Staff, error) {
			return nil, staffRepo.ErrStaffNotFound
		},
	}

	uc := NewUseCase(&mockAppointmentRepo{}, staff, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		DoctorID: 99,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, &mockStaffRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	appointments := &mockAppointmentRepo{
		ListActiveTimesFunc: func(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewUseCase(appointments, &mockStaffRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		DoctorID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
