package toggle_service

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidServiceID     = "некорректный ID услуги"
	msgWizardNotFound       = "мастер записи не запущен"
	msgSubmissionInProgress = "запись отправляется, изменение корзины недоступно"
	msgWizardFinished       = "мастер записи уже завершен"
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

// Handle POST /api/v1/wizard/services/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/services/toggle - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ToggleServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/services/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ServiceID <= 0 {
		h.logger.Warn("POST /wizard/services/toggle - Invalid service ID: %d", req.ServiceID)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	snap, err := h.service.ToggleService(userID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrWizardNotFound):
			h.logger.Warn("POST /wizard/services/toggle - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, wizard.ErrSubmissionInProgress):
			h.logger.Warn("POST /wizard/services/toggle - Submission in progress: user_id=%d", userID)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/services/toggle - Wizard finished: user_id=%d", userID)
			handlers.RespondConflict(w, msgWizardFinished)

		default:
			h.logger.Error("POST /wizard/services/toggle - Failed to toggle service: user_id=%d, service_id=%d, error=%v",
				userID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/services/toggle - Service toggled: user_id=%d, service_id=%d, cart_size=%d",
		userID, req.ServiceID, len(snap.CartServiceIDs))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
