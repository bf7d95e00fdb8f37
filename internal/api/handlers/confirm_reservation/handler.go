package confirm_reservation

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	confirmReservation "github.com/Isazzy/SBS-ReservationService/internal/usecase/confirm_reservation"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotesTooLong       = "комментарий слишком длинный"
	msgWizardNotFound     = "мастер записи не запущен"
	msgInvalidStep        = "подтверждение доступно только на шаге проверки заказа"
	msgNoSlotSelected     = "слот не выбран"
	msgSlotConflict       = "выбранный слот уже занят, выберите другое время"
	msgSubmissionFailed   = "не удалось создать запись, попробуйте еще раз"
)

type Handler struct {
	useCase ConfirmReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/confirm - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Тело опционально: подтверждение без комментария - валидный запрос
	var req ConfirmReservationRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /wizard/confirm - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &confirmReservation.Request{
		UserID: userID,
		Notes:  req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmReservation.ErrInvalidInput):
			h.logger.Warn("POST /wizard/confirm - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgNotesTooLong)

		case errors.Is(err, confirmReservation.ErrWizardNotFound):
			h.logger.Warn("POST /wizard/confirm - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, confirmReservation.ErrInvalidStep):
			h.logger.Warn("POST /wizard/confirm - Invalid step: user_id=%d", userID)
			handlers.RespondConflict(w, msgInvalidStep)

		case errors.Is(err, confirmReservation.ErrNoSlotSelected):
			h.logger.Warn("POST /wizard/confirm - No slot selected: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		case errors.Is(err, confirmReservation.ErrSlotConflict):
			h.logger.Warn("POST /wizard/confirm - Slot conflict: user_id=%d, error=%v", userID, err)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, confirmReservation.ErrSubmissionFailed):
			h.logger.Error("POST /wizard/confirm - Submission failed: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /wizard/confirm - Failed to confirm reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/confirm - Reservation created: user_id=%d, reservation_id=%d",
		userID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
