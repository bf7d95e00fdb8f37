package get_available_slots

import (
	"context"
	"time"

	"github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

// SchedulingServiceClient интерфейс клиента SchedulingService
type SchedulingServiceClient interface {
	GetAvailability(ctx context.Context, date string, serviceIDs []int64) (*schedulingservice.AvailabilityResponse, error)
}

// SessionManager интерфейс менеджера сессий визарда
type SessionManager interface {
	Update(userID int64, fn func(s *wizard.Session) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
