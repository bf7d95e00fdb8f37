package select_date

import (
	"time"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-09-15"
}

// ParseDate парсит дату из запроса
func (r *SelectDateRequest) ParseDate() (time.Time, error) {
	return time.Parse(domain.DateFormat, r.Date)
}
