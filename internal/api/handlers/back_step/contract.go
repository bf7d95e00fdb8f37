package back_step

import (
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

type WizardFlowService interface {
	Back(userID int64) (*wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
