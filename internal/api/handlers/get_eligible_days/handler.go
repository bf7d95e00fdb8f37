package get_eligible_days

import (
	"errors"
	"net/http"
	"time"

	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	"github.com/Isazzy/SBS-ReservationService/internal/api/middleware"
	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/service/wizardflow"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

const (
	msgUnauthorized   = "требуется аутентификация"
	msgInvalidRange   = "некорректный диапазон дат, ожидается from=YYYY-MM-DD&to=YYYY-MM-DD"
	msgRangeTooWide   = "слишком широкий диапазон дат"
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

// Handle GET /api/v1/wizard/eligible-days?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /wizard/eligible-days - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /wizard/eligible-days - Invalid 'from' date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /wizard/eligible-days - Invalid 'to' date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	days, err := h.service.EligibleDays(userID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrWizardNotFound):
			h.logger.Warn("GET /wizard/eligible-days - Wizard not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgWizardNotFound)

		case errors.Is(err, wizardflow.ErrRangeTooWide):
			h.logger.Warn("GET /wizard/eligible-days - Range too wide: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, wizardflow.ErrInvalidInput):
			h.logger.Warn("GET /wizard/eligible-days - Invalid range: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /wizard/eligible-days - Failed to compute days: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := EligibleDaysResponse{Days: make([]string, 0, len(days))}
	for _, day := range days {
		response.Days = append(response.Days, day.Format(domain.DateFormat))
	}

	h.logger.Info("GET /wizard/eligible-days - Computed eligible days: user_id=%d, count=%d", userID, len(days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
