package get_wizard

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

const (
	msgUnauthorized   = "требуется аутентификация"
	msgWizardNotFound = "мастер записи не запущен"
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

// Handle GET /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /wizard - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	snap, err := h.service.State(userID)
	if err != nil {
		if errors.Is(err, wizard.ErrWizardNotFound) {
			h.logger.Warn("GET /wizard - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)
			return
		}
		h.logger.Error("GET /wizard - Failed to get wizard state: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
