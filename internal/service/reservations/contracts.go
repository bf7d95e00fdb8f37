package reservations

import (
	"context"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
)

// ReservationRepository интерфейс репозитория локальных записей бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ReservationRecord, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.ReservationRecord, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// SchedulingServiceClient интерфейс клиента SchedulingService
type SchedulingServiceClient interface {
	UpdateReservationStatus(ctx context.Context, reservationID int64, newStatus string) (*schedulingservice.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
