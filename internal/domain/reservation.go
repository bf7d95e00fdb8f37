package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation record
type ReservationStatus string

const (
	StatusPending               ReservationStatus = "pending"
	StatusConfirmed             ReservationStatus = "confirmed"
	StatusCancellationRequested ReservationStatus = "cancellation_requested"
	StatusCancelled             ReservationStatus = "cancelled"
	StatusCompleted             ReservationStatus = "completed"
)

// ValidStatuses полный набор допустимых статусов
var ValidStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancellationRequested,
	StatusCancelled,
	StatusCompleted,
}

// IsValidStatus returns true if s belongs to the fixed status set
func IsValidStatus(s ReservationStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// ReservationRequest is the submission payload built at the final
// confirmation transition. It is never mutated afterwards; a retry
// builds a new request.
type ReservationRequest struct {
	UserID     int64
	StaffID    int64
	ServiceIDs []int64
	Date       time.Time
	StartTime  types.TimeString
	Notes      *string
}

// ReservationRecord is the local copy of a reservation created through
// this service. Service names, total price and duration are denormalized
// at submission time so history survives later catalog edits.
type ReservationRecord struct {
	ID              int64
	UserID          int64
	StaffID         int64
	StaffName       string
	ServiceIDs      []int64
	ServiceNames    []string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	TotalPrice      decimal.Decimal
	Status          ReservationStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanRequestCancellation returns true if a client may flag the reservation
// as "cancellation requested" (only from pending or confirmed)
func (r *ReservationRecord) CanRequestCancellation() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true if the reservation reached a final status
func (r *ReservationRecord) IsTerminal() bool {
	return r.Status == StatusCancelled || r.Status == StatusCompleted
}
