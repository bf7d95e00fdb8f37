package reset_wizard

import (
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
)

const (
	msgUnauthorized = "требуется аутентификация"
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

// Handle DELETE /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /wizard - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Сброс идемпотентен: отсутствие визарда не считается ошибкой
	h.service.Reset(userID)

	h.logger.Info("DELETE /wizard - Wizard reset: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
