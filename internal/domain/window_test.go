package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingWindow_DateAllowed(t *testing.T) {
	window := NewBookingWindow()
	// Середина месяца, чтобы границы были видны с обеих сторон
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{
			name: "today is allowed",
			date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "yesterday is not allowed",
			date: time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "tomorrow is allowed",
			date: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "last day of current+3 month is allowed",
			date: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "first day of current+4 month is not allowed",
			date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.DateAllowed(tt.date, now))
		})
	}
}

func TestBookingWindow_DateAllowed_IgnoresTimeOfDay(t *testing.T) {
	window := NewBookingWindow()
	now := time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC)

	// Сегодняшняя дата допустима даже поздним вечером
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, window.DateAllowed(today, now))
}

func TestBookingWindow_MonthAllowed(t *testing.T) {
	window := NewBookingWindow()
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month time.Time
		want  bool
	}{
		{
			name:  "current month",
			month: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "current+3 month",
			month: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "current+4 month is out of window",
			month: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "previous month is out of window",
			month: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, window.MonthAllowed(tt.month, now))
		})
	}
}

func TestAddMonths_YearRollover(t *testing.T) {
	start := time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)

	got := AddMonths(start, 3)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), got)
}
