package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDateEligible(t *testing.T) {
	now := time.Date(2026, 9, 14, 15, 30, 0, 0, time.UTC) // понедельник
	staff := []StaffSchedule{
		NewStaffSchedule(1, "Ana", "stylist", []string{"monday", "wednesday"}),
		NewStaffSchedule(2, "Luis", "barber", []string{"viernes"}),
	}

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"today with working staff", time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), false},
		{"future wednesday", time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), true},
		{"future friday via spanish schedule", time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC), true},
		{"future sunday nobody works", time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDateEligible(tt.date, now, staff))
		})
	}
}

func TestIsDateEligible_SameDayLaterHoursStillEligible(t *testing.T) {
	// Сравнение только по календарной дате: текущее время дня не делает
	// сегодняшнюю дату прошедшей
	now := time.Date(2026, 9, 14, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	staff := []StaffSchedule{NewStaffSchedule(1, "Ana", "stylist", []string{"monday"})}

	assert.True(t, IsDateEligible(today, now, staff))
}

func TestIsDateEligible_EmptyStaffFailsClosed(t *testing.T) {
	now := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsDateEligible(future, now, nil))
	assert.False(t, IsDateEligible(future, now, []StaffSchedule{}))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2026, 9, 13, 23, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), now))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 9, 14, 18, 45, 12, 99, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}
