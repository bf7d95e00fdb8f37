package choose_slot

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgWizardNotFound     = "мастер записи не запущен"
	msgSlotNotOffered     = "выбранный слот отсутствует в актуальной выдаче"
	msgInvalidTransition  = "выбор слота доступен только на шаге выбора времени"
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

// Handle POST /api/v1/wizard/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/slot - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ChooseSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("POST /wizard/slot - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	snap, err := h.service.ChooseSlot(userID, req.StaffID, startTime)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrWizardNotFound):
			h.logger.Warn("POST /wizard/slot - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, wizard.ErrSlotNotOffered):
			h.logger.Warn("POST /wizard/slot - Slot not offered: user_id=%d, staff_id=%d, time=%s",
				userID, req.StaffID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotOffered)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/slot - Invalid transition: user_id=%d", userID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/slot - Failed to choose slot: user_id=%d, staff_id=%d, error=%v",
				userID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/slot - Slot chosen: user_id=%d, staff_id=%d, time=%s",
		userID, req.StaffID, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(snap))
}
