package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

type fakeApptRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.Appointment, error)
	getByPhoneFn   func(ctx context.Context, phone string) ([]*domain.Appointment, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeApptRepo) GetByPhone(ctx context.Context, phone string) ([]*domain.Appointment, error) {
	if f.getByPhoneFn == nil {
		panic("GetByPhone not configured")
	}
	return f.getByPhoneFn(ctx, phone)
}

func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if f.updateStatusFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateStatusFn(ctx, id, status)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func bookedAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		PatientName:   "Ivan Petrov",
		Phone:         "+79001234567",
		SituationType: "first_visit",
		ServiceID:     1,
		ServiceName:   "General Consultation",
		Date:          time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		SlotTime:      "10:30",
		Status:        domain.StatusBooked,
		CreatedAt:     time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetByPhone_TrimsPhone(t *testing.T) {
	var gotPhone string
	repo := &fakeApptRepo{
		getByPhoneFn: func(_ context.Context, phone string) ([]*domain.Appointment, error) {
			gotPhone = phone
			return []*domain.Appointment{bookedAppointment(1)}, nil
		},
	}

	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByPhone(context.Background(), "  +79001234567  ")
	require.NoError(t, err)
	assert.Equal(t, "+79001234567", gotPhone)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "2025-10-20", resp.Appointments[0].Date)
	assert.Equal(t, "10:30", resp.Appointments[0].Time)
}

func TestGetByPhone_EmptyPhone(t *testing.T) {
	svc := NewService(&fakeApptRepo{}, noopLogger{})

	_, err := svc.GetByPhone(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByPhone_NoAppointments(t *testing.T) {
	repo := &fakeApptRepo{
		getByPhoneFn: func(_ context.Context, _ string) ([]*domain.Appointment, error) {
			return nil, nil
		},
	}

	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByPhone(context.Background(), "+79001234567")
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
	assert.NotNil(t, resp.Appointments, "empty list serializes as [], not null")
}

func TestCancel_Success(t *testing.T) {
	var updatedStatus domain.AppointmentStatus
	repo := &fakeApptRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Appointment, error) {
			return bookedAppointment(id), nil
		},
		updateStatusFn: func(_ context.Context, _ int64, status domain.AppointmentStatus) error {
			updatedStatus = status
			return nil
		},
	}

	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 7))
	assert.Equal(t, domain.StatusCancelled, updatedStatus)
}

func TestCancel_AlreadyCancelledIsIdempotent(t *testing.T) {
	repo := &fakeApptRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.Appointment, error) {
			appt := bookedAppointment(id)
			appt.Status = domain.StatusCancelled
			return appt, nil
		},
		// updateStatusFn не настроен: повторная отмена не должна трогать БД
	}

	svc := NewService(repo, noopLogger{})

	assert.NoError(t, svc.Cancel(context.Background(), 7))
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeApptRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Appointment, error) {
			return nil, apptRepo.ErrAppointmentNotFound
		},
	}

	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := &fakeApptRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.Appointment, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}
