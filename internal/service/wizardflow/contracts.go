package wizardflow

import (
	"time"

	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

// SessionManager интерфейс менеджера сессий визарда
type SessionManager interface {
	Update(userID int64, fn func(s *wizard.Session) error) error
	Remove(userID int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
