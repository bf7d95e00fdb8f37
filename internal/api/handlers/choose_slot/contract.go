package choose_slot

import (
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

type WizardFlowService interface {
	ChooseSlot(userID int64, staffID int64, startTime types.TimeString) (*wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
