package start_wizard

import (
	"context"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/salonservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

// SalonServiceClient интерфейс клиента SalonService
type SalonServiceClient interface {
	GetActiveServices(ctx context.Context) ([]salonservice.Service, error)
	GetStaffMembers(ctx context.Context) ([]salonservice.StaffMember, error)
}

// SessionManager интерфейс менеджера сессий визарда
type SessionManager interface {
	Start(userID int64, catalog *domain.CatalogSnapshot, staff []domain.StaffSchedule) (*wizard.Session, error)
	Update(userID int64, fn func(s *wizard.Session) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
