package confirm_reservation

import (
	"fmt"
	"strings"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
)

// validateRequest проверяет корректность запроса на подтверждение
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		if len([]rune(trimmed)) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
	}

	return nil
}

// normalizeNotes обрезает пробелы; пустой комментарий не отправляется
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
