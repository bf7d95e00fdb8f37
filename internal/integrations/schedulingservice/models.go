package schedulingservice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StaffAvailability слоты одного сотрудника из ответа SchedulingService
type StaffAvailability struct {
	StaffName  string   `json:"staffName"`
	Profession string   `json:"profession"`
	Slots      []string `json:"slots"` // времена начала, "HH:MM"
}

// AvailabilityResponse ответ на запрос доступности:
// ключ - идентификатор сотрудника в строковом виде (JSON-объект)
type AvailabilityResponse struct {
	Availability map[string]StaffAvailability `json:"availability"`
}

// CreateReservationRequest запрос на создание бронирования
type CreateReservationRequest struct {
	UserID     int64   `json:"userId"`
	StaffID    int64   `json:"staffId"`
	ServiceIDs []int64 `json:"serviceIds"`
	Date       string  `json:"date"`      // YYYY-MM-DD
	StartTime  string  `json:"timeOfDay"` // HH:MM
	Notes      *string `json:"notes,omitempty"`
}

// Reservation модель бронирования из SchedulingService
type Reservation struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	StaffID         int64           `json:"staffId"`
	StaffName       string          `json:"staffName"`
	ServiceIDs      []int64         `json:"serviceIds"`
	Date            string          `json:"date"`
	StartTime       string          `json:"timeOfDay"`
	DurationMinutes int             `json:"durationMinutes"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"newStatus"`
}

// ErrorResponse модель ошибки от SchedulingService
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ValidationError ошибка валидации со стороны SchedulingService.
// Пословные (field-level) сообщения сервера передаются дальше дословно,
// чтобы визард мог показать их пользователю.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("schedulingservice: validation failed: %s", e.Message)
	}

	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Sprintf("schedulingservice: validation failed: %s (%s)", e.Message, strings.Join(parts, "; "))
}

// Unwrap позволяет errors.Is находить ErrSlotConflict за ValidationError
func (e *ValidationError) Unwrap() error {
	return ErrSlotConflict
}
