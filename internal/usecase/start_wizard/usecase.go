package start_wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/salonservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

// UseCase создания новой сессии визарда бронирования
type UseCase struct {
	salonClient SalonServiceClient
	sessions    SessionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	salonClient SalonServiceClient,
	sessions SessionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonClient: salonClient,
		sessions:    sessions,
		logger:      logger,
	}
}

// Execute выполняет старт визарда:
// 1. Валидация входных данных
// 2. Загрузка снапшота каталога услуг из SalonService
// 3. Загрузка расписаний персонала из SalonService
// 4. Создание сессии визарда (ровно одна на пользователя)
// 5. Возврат стартового состояния
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartWizard: starting wizard for user=%d", req.UserID)

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	// 2. Загрузка каталога услуг
	services, err := uc.salonClient.GetActiveServices(ctx)
	if err != nil {
		uc.logger.Error("StartWizard: failed to load service catalog for user=%d: %v", req.UserID, err)
		if errors.Is(err, salonservice.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
		}
		return nil, fmt.Errorf("%w: StartWizard - catalog load failed: %v", ErrInternal, err)
	}

	// 3. Загрузка расписаний персонала
	staffMembers, err := uc.salonClient.GetStaffMembers(ctx)
	if err != nil {
		uc.logger.Error("StartWizard: failed to load staff directory for user=%d: %v", req.UserID, err)
		if errors.Is(err, salonservice.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
		}
		return nil, fmt.Errorf("%w: StartWizard - staff load failed: %v", ErrInternal, err)
	}

	catalog := domain.NewCatalogSnapshot(toDomainServices(services))
	staff := toDomainStaff(staffMembers)

	if catalog.Len() == 0 {
		uc.logger.Warn("StartWizard: service catalog is empty, wizard for user=%d starts with nothing to select", req.UserID)
	}

	// 4. Создание сессии
	session, err := uc.sessions.Start(req.UserID, catalog, staff)
	if err != nil {
		if errors.Is(err, wizard.ErrWizardInProgress) {
			uc.logger.Warn("StartWizard: user=%d already has a wizard in progress", req.UserID)
			return nil, ErrWizardInProgress
		}
		uc.logger.Error("StartWizard: session creation failed for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: StartWizard - session creation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("StartWizard: wizard session=%s created for user=%d, catalog=%d services, staff=%d members",
		session.ID, req.UserID, catalog.Len(), len(staff))

	// 5. Стартовое состояние (снимок строится под блокировкой менеджера)
	var state wizard.Snapshot
	if err := uc.sessions.Update(req.UserID, func(s *wizard.Session) error {
		state = s.Snapshot()
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w: StartWizard - snapshot failed: %v", ErrInternal, err)
	}

	return &Response{State: state}, nil
}

// toDomainServices конвертирует услуги SalonService в domain модели
func toDomainServices(services []salonservice.Service) []domain.Service {
	result := make([]domain.Service, 0, len(services))
	for _, s := range services {
		result = append(result, domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Category:        s.Category,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Active:          s.Active,
		})
	}
	return result
}

// toDomainStaff конвертирует сотрудников SalonService в domain модели,
// нормализуя имена рабочих дней
func toDomainStaff(members []salonservice.StaffMember) []domain.StaffSchedule {
	result := make([]domain.StaffSchedule, 0, len(members))
	for _, m := range members {
		result = append(result, domain.NewStaffSchedule(m.ID, m.Name, m.Profession, m.WorkingWeekdays))
	}
	return result
}
