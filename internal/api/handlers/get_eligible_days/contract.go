package get_eligible_days

import "time"

type WizardFlowService interface {
	EligibleDays(userID int64, from, to time.Time) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
