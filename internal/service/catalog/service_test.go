package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type fakeServiceRepo struct {
	listFn func(ctx context.Context) ([]*domain.Service, error)
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*domain.Service, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestListServices(t *testing.T) {
	repo := &fakeServiceRepo{
		listFn: func(_ context.Context) ([]*domain.Service, error) {
			return []*domain.Service{
				{ID: 1, Name: "General Consultation", DurationMinutes: 30},
				{ID: 2, Name: "Lab Services", DurationMinutes: 30},
			}, nil
		},
	}

	svc := NewService(repo, domain.GenerateSlots(), noopLogger{})

	resp, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "General Consultation", resp.Services[0].Name)
	assert.Equal(t, int64(2), resp.Services[1].ID)
}

func TestListServices_RepositoryError(t *testing.T) {
	repo := &fakeServiceRepo{
		listFn: func(_ context.Context) ([]*domain.Service, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := NewService(repo, domain.GenerateSlots(), noopLogger{})

	_, err := svc.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestTimeSlots(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, domain.GenerateSlots(), noopLogger{})

	resp := svc.TimeSlots()
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "09:00", resp.Slots[0])
	assert.Equal(t, "16:30", resp.Slots[15])
	assert.Equal(t, 16, resp.DailyCapacity)
}
