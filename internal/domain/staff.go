package domain

import "time"

// StaffSchedule represents a staff member and the set of weekdays they work
type StaffSchedule struct {
	ID         int64
	Name       string
	Profession string

	// workingDays нормализованные имена рабочих дней недели
	workingDays map[string]struct{}
}

// NewStaffSchedule builds a staff schedule, normalizing the weekday names
// before any comparison happens
func NewStaffSchedule(id int64, name, profession string, workingWeekdays []string) StaffSchedule {
	days := make(map[string]struct{}, len(workingWeekdays))
	for _, day := range workingWeekdays {
		if normalized := NormalizeDayName(day); normalized != "" {
			days[normalized] = struct{}{}
		}
	}

	return StaffSchedule{
		ID:          id,
		Name:        name,
		Profession:  profession,
		workingDays: days,
	}
}

// WorksOn returns true if the staff member works on the date's weekday
func (s *StaffSchedule) WorksOn(date time.Time) bool {
	for _, alias := range WeekdayNames(date) {
		if _, ok := s.workingDays[alias]; ok {
			return true
		}
	}
	return false
}

// WorkingDays returns the normalized working weekday names
func (s *StaffSchedule) WorkingDays() []string {
	days := make([]string, 0, len(s.workingDays))
	for day := range s.workingDays {
		days = append(days, day)
	}
	return days
}
