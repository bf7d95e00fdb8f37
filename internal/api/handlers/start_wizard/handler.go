package start_wizard

import (
	"errors"
	"net/http"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	startWizard "github.com/Isazzy/SBS-ReservationService/internal/usecase/start_wizard"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgWizardInProgress     = "мастер записи уже запущен"
	msgDirectoryUnavailable = "каталог услуг временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase StartWizardUseCase
	logger  Logger
}

func NewHandler(useCase StartWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &startWizard.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, startWizard.ErrWizardInProgress):
			h.logger.Warn("POST /wizard - Wizard already in progress: user_id=%d", userID)
			handlers.RespondConflict(w, msgWizardInProgress)

		case errors.Is(err, startWizard.ErrDirectoryUnavailable):
			h.logger.Error("POST /wizard - Directory unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDirectoryUnavailable)

		default:
			h.logger.Error("POST /wizard - Failed to start wizard: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard - Wizard started: user_id=%d, session_id=%s", userID, result.State.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(&result.State))
}
