package start_wizard

import (
	"context"

	startWizard "github.com/Isazzy/SBS-ReservationService/internal/usecase/start_wizard"
)

type StartWizardUseCase interface {
	Execute(ctx context.Context, req *startWizard.Request) (*startWizard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
