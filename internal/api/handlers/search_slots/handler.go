package search_slots

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	getAvailableSlots "github.com/Isazzy/SBS-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgUnauthorized   = "требуется аутентификация"
	msgWizardNotFound = "мастер записи не запущен"
	msgInvalidStep    = "поиск слотов доступен только на шаге выбора времени"
	msgSuperseded     = "состояние визарда изменилось, повторите поиск"
	msgSearchFailed   = "не удалось получить доступные слоты, попробуйте позже"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/slots/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/slots/search - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrWizardNotFound):
			h.logger.Warn("POST /wizard/slots/search - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidStep):
			h.logger.Warn("POST /wizard/slots/search - Invalid step: user_id=%d, error=%v", userID, err)
			handlers.RespondConflict(w, msgInvalidStep)

		case errors.Is(err, getAvailableSlots.ErrSuperseded):
			h.logger.Warn("POST /wizard/slots/search - Result superseded: user_id=%d", userID)
			handlers.RespondConflict(w, msgSuperseded)

		case errors.Is(err, getAvailableSlots.ErrSearchFailed):
			h.logger.Error("POST /wizard/slots/search - Search failed: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSearchFailed)

		default:
			h.logger.Error("POST /wizard/slots/search - Failed to search slots: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/slots/search - Slots found: user_id=%d, staff_count=%d",
		userID, len(result.State.Availability))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(&result.State))
}
