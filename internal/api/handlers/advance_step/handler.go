package advance_step

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
	msgEmptyCart         = "корзина пуста, выберите хотя бы одну услугу"
	msgNoDateSelected    = "дата не выбрана"
	msgDateNotEligible   = "в выбранную дату запись недоступна"
	msgInvalidTransition = "переход на следующий шаг сейчас недоступен"
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

// Handle POST /api/v1/wizard/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/advance - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	snap, err := h.service.Advance(userID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrWizardNotFound):
			h.logger.Warn("POST /wizard/advance - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, wizard.ErrEmptyCart):
			h.logger.Warn("POST /wizard/advance - Empty cart: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, wizard.ErrNoDateSelected):
			h.logger.Warn("POST /wizard/advance - No date selected: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, wizard.ErrDateNotEligible):
			h.logger.Warn("POST /wizard/advance - Date not eligible: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/advance - Invalid transition: user_id=%d", userID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/advance - Failed to advance wizard: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/advance - Wizard advanced: user_id=%d, step=%s", userID, snap.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
