package get_calendar_load

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

type fakeApptRepo struct {
	countBookedPerDayFn func(ctx context.Context, serviceID int64, from, to time.Time) (map[string]int, error)
}

func (f *fakeApptRepo) CountBookedPerDay(ctx context.Context, serviceID int64, from, to time.Time) (map[string]int, error) {
	if f.countBookedPerDayFn == nil {
		panic("CountBookedPerDay not configured")
	}
	return f.countBookedPerDayFn(ctx, serviceID, from, to)
}

type fakeServiceRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Service, error)
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(apptRepo *fakeApptRepo, svcRepo *fakeServiceRepo) *UseCase {
	uc := NewUseCase(apptRepo, svcRepo, domain.GenerateSlots(), noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func knownService(id int64) *fakeServiceRepo {
	return &fakeServiceRepo{
		getByIDFn: func(_ context.Context, gotID int64) (*domain.Service, error) {
			if gotID != id {
				return nil, serviceRepo.ErrServiceNotFound
			}
			return &domain.Service{ID: id, Name: "Lab Services", DurationMinutes: 30}, nil
		},
	}
}

func TestExecute_ScopedMonth(t *testing.T) {
	apptRepo := &fakeApptRepo{
		countBookedPerDayFn: func(_ context.Context, _ int64, from, to time.Time) (map[string]int, error) {
			assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), to)
			return map[string]int{
				"2025-10-20": 6,  // Medium
				"2025-10-21": 16, // заполнен до вместимости
				"2025-10-22": 13, // High, но не заполнен
			}, nil
		},
	}

	uc := newTestUseCase(apptRepo, knownService(1))

	resp, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Scope: domain.ForService(1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 31)
	assert.Equal(t, 16, resp.DailyCapacity)

	byDate := make(map[string]domain.DayLoad, len(resp.Days))
	for _, d := range resp.Days {
		byDate[d.Date.Format(domain.DateFormat)] = d
	}

	day := byDate["2025-10-20"]
	assert.Equal(t, 6, day.Count)
	assert.Equal(t, domain.LoadLevelMedium, day.Level)
	assert.False(t, day.IsFull)
	assert.False(t, day.Disabled)

	full := byDate["2025-10-21"]
	assert.Equal(t, domain.LoadLevelHigh, full.Level)
	assert.True(t, full.IsFull)
	assert.True(t, full.Disabled)

	high := byDate["2025-10-22"]
	assert.Equal(t, domain.LoadLevelHigh, high.Level)
	assert.False(t, high.IsFull, "13 of 16 is high load but not full")
	assert.False(t, high.Disabled)

	// День без записей
	empty := byDate["2025-10-25"]
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, domain.LoadLevelLow, empty.Level)

	// Прошедшие дни месяца недоступны
	past := byDate["2025-10-14"]
	assert.True(t, past.Disabled)
	assert.False(t, past.IsFull)

	today := byDate["2025-10-15"]
	assert.False(t, today.Disabled, "today is available")
}

func TestExecute_UnscopedMonthHasZeroCounts(t *testing.T) {
	// CountBookedPerDay не должен вызываться: фейк без настройки паникует
	uc := newTestUseCase(&fakeApptRepo{}, &fakeServiceRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		Scope: domain.AllServices(),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 30)
	for _, d := range resp.Days {
		assert.Equal(t, 0, d.Count)
		assert.Equal(t, domain.LoadLevelLow, d.Level)
		assert.False(t, d.IsFull, "unscoped day can never be full")
		assert.False(t, d.Disabled, "future month has no past days")
	}
}

func TestExecute_MonthOutsideWindow(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, &fakeServiceRepo{})

	tests := []struct {
		name  string
		month time.Time
	}{
		{name: "past month", month: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
		{name: "current+4 month", month: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				Month: tt.month,
				Scope: domain.AllServices(),
			})
			assert.ErrorIs(t, err, ErrMonthNotAllowed)
		})
	}
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, knownService(1))

	_, err := uc.Execute(context.Background(), &Request{
		Month: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Scope: domain.ForService(999),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ZeroMonth(t *testing.T) {
	uc := newTestUseCase(&fakeApptRepo{}, &fakeServiceRepo{})

	_, err := uc.Execute(context.Background(), &Request{Scope: domain.AllServices()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
