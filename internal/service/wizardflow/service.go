package wizardflow

import (
	"fmt"
	"time"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

// Service сервис событий визарда: простые переходы состояния, не требующие
// сетевых вызовов. Сложные операции (старт, поиск слотов, подтверждение)
// живут в соответствующих use case.
type Service struct {
	manager      SessionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса событий визарда
func NewService(manager SessionManager, logger Logger) *Service {
	return &Service{
		manager:      manager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// State возвращает снимок текущего состояния визарда пользователя
func (s *Service) State(userID int64) (*wizard.Snapshot, error) {
	var snap wizard.Snapshot

	err := s.manager.Update(userID, func(session *wizard.Session) error {
		snap = session.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// Reset полностью сбрасывает визард пользователя
func (s *Service) Reset(userID int64) {
	s.manager.Remove(userID)
	s.logger.Info("Reset: wizard session removed for user=%d", userID)
}

// ToggleService добавляет или убирает услугу из корзины.
// Изменение корзины инвалидирует доступность и выбранный слот.
func (s *Service) ToggleService(userID int64, serviceID int64) (*wizard.Snapshot, error) {
	var snap wizard.Snapshot

	err := s.manager.Update(userID, func(session *wizard.Session) error {
		changed, err := session.ToggleService(serviceID)
		if err != nil {
			return err
		}
		if !changed {
			// id не из снапшота каталога - no-op по контракту корзины
			s.logger.Warn("ToggleService: unknown service id=%d ignored for user=%d", serviceID, userID)
		}
		snap = session.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ToggleService: user=%d, service=%d, cart_size=%d", userID, serviceID, len(snap.CartServiceIDs))
	return &snap, nil
}

// SelectDate обрабатывает событие dateChanged
func (s *Service) SelectDate(userID int64, date time.Time) (*wizard.Snapshot, error) {
	now := s.timeProvider.Now()
	var snap wizard.Snapshot

	err := s.manager.Update(userID, func(session *wizard.Session) error {
		if err := session.SelectDate(date, now); err != nil {
			return err
		}
		snap = session.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectDate: user=%d, date=%s", userID, date.Format(domain.DateFormat))
	return &snap, nil
}

// Advance переводит визард на следующий шаг
func (s *Service) Advance(userID int64) (*wizard.Snapshot, error) {
	now := s.timeProvider.Now()
	var snap wizard.Snapshot

	err := s.manager.Update(userID, func(session *wizard.Session) error {
		if err := session.Advance(now); err != nil {
			return err
		}
		snap = session.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Advance: user=%d, step=%s", userID, snap.Step)
	return &snap, nil
}

// Back возвращает визард на предыдущий шаг (корзина не меняется)
func (s *Service) Back(userID int64) (*wizard.Snapshot, error) {
	var snap wizard.Snapshot

	err := s.manager.Update(userID, func(session *wizard.Session) error {
		if err := session.Back(); err != nil {
			return err
		}
		snap = session.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Back: user=%d, step=%s", userID, snap.Step)
	return &snap, nil
}

// ChooseSlot обрабатывает событие slotChosen
func (s *Service) ChooseSlot(userID int64, staffID int64, startTime types.TimeString) (*wizard.Snapshot, error) {
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var snap wizard.Snapshot

	err := s.manager.Update(userID, func(session *wizard.Session) error {
		if err := session.ChooseSlot(staffID, startTime); err != nil {
			return err
		}
		snap = session.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ChooseSlot: user=%d, staff=%d, time=%s", userID, staffID, startTime)
	return &snap, nil
}

// EligibleDays вычисляет доступные для записи даты в диапазоне [from, to]
// по расписаниям персонала из сессии. Функция оценки чистая, поэтому
// календарь может запрашивать произвольные диапазоны (до двух месяцев).
func (s *Service) EligibleDays(userID int64, from, to time.Time) ([]time.Time, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	from = domain.DateOnly(from)
	to = domain.DateOnly(to)

	if int(to.Sub(from).Hours()/24) > domain.MaxEligibleDaysRange {
		return nil, fmt.Errorf("%w: at most %d days per request", ErrRangeTooWide, domain.MaxEligibleDaysRange)
	}

	now := s.timeProvider.Now()
	var eligible []time.Time

	err := s.manager.Update(userID, func(session *wizard.Session) error {
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if domain.IsDateEligible(d, now, session.Staff) {
				eligible = append(eligible, d)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return eligible, nil
}
