package back_step

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

const (
	msgUnauthorized      = "требуется аутентификация"
	msgWizardNotFound    = "мастер записи не запущен"
	msgInvalidTransition = "возврат на предыдущий шаг сейчас недоступен"
)

type Handler struct {
	service WizardFlowService
	logger  Logger
}

func NewHandler(service WizardFlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/back - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	snap, err := h.service.Back(userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrWizardNotFound):
			h.logger.Warn("POST /wizard/back - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/back - Invalid transition: user_id=%d", userID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/back - Failed to go back: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/back - Wizard stepped back: user_id=%d, step=%s", userID, snap.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
