package select_date

import (
	"time"

	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

type WizardFlowService interface {
	SelectDate(userID int64, date time.Time) (*wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
