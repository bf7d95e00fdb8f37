package confirm_reservation

import (
	"github.com/Isazzy/SBS-ReservationService/internal/api/handlers"
	confirmReservation "github.com/Isazzy/SBS-ReservationService/internal/usecase/confirm_reservation"
)

// ConfirmReservationRequest HTTP request model
type ConfirmReservationRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ConfirmReservationResponse HTTP response model
type ConfirmReservationResponse struct {
	ReservationID int64                         `json:"reservationId"`
	Status        string                        `json:"status"`
	State         *handlers.WizardStateResponse `json:"state"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmReservation.Response) *ConfirmReservationResponse {
	return &ConfirmReservationResponse{
		ReservationID: resp.ReservationID,
		Status:        resp.Status,
		State:         handlers.FromSnapshot(&resp.State),
	}
}
