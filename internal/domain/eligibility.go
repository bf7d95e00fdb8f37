package domain

import "time"

// IsDateEligible decides whether a calendar date can be selected in the wizard:
// the date must not be before today (date-only comparison) and at least one
// staff member must work on its weekday.
//
// Пустой список расписаний означает "данные еще не загружены" - в этом случае
// все даты считаются недоступными (fail closed), чтобы не предлагать даты,
// которые никто не сможет обслужить.
//
// The function is pure so a calendar can evaluate it per rendered date.
func IsDateEligible(date time.Time, now time.Time, staff []StaffSchedule) bool {
	if IsDateInPast(date, now) {
		return false
	}

	for i := range staff {
		if staff[i].WorksOn(date) {
			return true
		}
	}

	return false
}

// IsDateInPast returns true if date is before today, ignoring time of day
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}

// DateOnly truncates a timestamp to its calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay returns true if both timestamps fall on the same calendar date
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
