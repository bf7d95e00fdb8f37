package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID      int64
	RequesterID int64 // ID пользователя из заголовка - должен совпадать с UserID
	Status      *string
}

// UpdateStatusRequest запрос оператора на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	StaffID         int64           `json:"staffId"`
	StaffName       string          `json:"staffName"`
	ServiceIDs      []int64         `json:"serviceIds"`
	ServiceNames    []string        `json:"serviceNames"`
	Date            string          `json:"date"`      // "2026-09-15"
	StartTime       string          `json:"timeOfDay"` // "10:00"
	DurationMinutes int             `json:"durationMinutes"`
	DurationLabel   string          `json:"durationLabel"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	Notes           *string         `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.ReservationRecord) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		StaffID:         r.StaffID,
		StaffName:       r.StaffName,
		ServiceIDs:      r.ServiceIDs,
		ServiceNames:    r.ServiceNames,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		DurationMinutes: r.DurationMinutes,
		DurationLabel:   domain.FormatDuration(r.DurationMinutes),
		TotalPrice:      r.TotalPrice,
		Status:          string(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(records []*domain.ReservationRecord) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(records)),
	}

	for _, rec := range records {
		if converted := FromDomainReservation(rec); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
