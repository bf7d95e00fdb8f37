package confirm_reservation

import (
	"context"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

// SchedulingServiceClient интерфейс клиента SchedulingService
type SchedulingServiceClient interface {
	CreateReservation(ctx context.Context, req *schedulingservice.CreateReservationRequest) (*schedulingservice.Reservation, error)
}

// SessionManager интерфейс менеджера сессий визарда
type SessionManager interface {
	Update(userID int64, fn func(s *wizard.Session) error) error
	Remove(userID int64)
}

// ReservationRepository интерфейс репозитория локального списка бронирований
type ReservationRepository interface {
	Create(ctx context.Context, rec *domain.ReservationRecord) (*domain.ReservationRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
