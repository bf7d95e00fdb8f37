package select_date

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgWizardNotFound     = "мастер записи не запущен"
	msgDateNotEligible    = "в выбранную дату запись недоступна"
	msgInvalidTransition  = "выбор даты доступен только на шаге выбора даты"
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

// Handle PUT /api/v1/wizard/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /wizard/date - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("PUT /wizard/date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	snap, err := h.service.SelectDate(userID, date)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrWizardNotFound):
			h.logger.Warn("PUT /wizard/date - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, wizard.ErrDateNotEligible):
			h.logger.Warn("PUT /wizard/date - Date not eligible: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("PUT /wizard/date - Invalid transition: user_id=%d", userID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PUT /wizard/date - Failed to select date: user_id=%d, date=%s, error=%v",
				userID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizard/date - Date selected: user_id=%d, date=%s", userID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
