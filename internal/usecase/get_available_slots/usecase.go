package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

// UseCase поиска доступных слотов для текущей пары (дата, корзина) визарда
type UseCase struct {
	schedClient  SchedulingServiceClient
	sessions     SessionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	schedClient SchedulingServiceClient,
	sessions SessionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedClient:  schedClient,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет поиск слотов:
// 1. Валидация входных данных
// 2. Регистрация запроса в сессии (номер и ключ текущей пары дата+корзина)
// 3. Запрос доступности у SchedulingService (вне блокировки)
// 4. Конвертация ответа в domain модель
// 5. Применение результата; устаревший результат отбрасывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: searching slots for user=%d", req.UserID)

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	// 2. Регистрация запроса: фиксируем номер и ключ под блокировкой,
	// чтобы ответ можно было сверить с состоянием на момент отправки
	var (
		seq        uint64
		key        string
		date       string
		serviceIDs []int64
	)
	err := uc.sessions.Update(req.UserID, func(s *wizard.Session) error {
		var beginErr error
		seq, key, beginErr = s.BeginAvailabilityFetch(uc.timeProvider.Now())
		if beginErr != nil {
			return beginErr
		}
		date = s.SelectedDate.Format(domain.DateFormat)
		serviceIDs = s.Cart.IDs()
		return nil
	})
	if err != nil {
		return nil, uc.mapSessionError(req.UserID, err)
	}

	// 3. Сетевой вызов вне блокировки менеджера
	availResp, fetchErr := uc.schedClient.GetAvailability(ctx, date, serviceIDs)

	var availability domain.Availability
	if fetchErr == nil {
		// 4. Конвертация ответа
		availability = uc.toDomainAvailability(availResp)
	}

	// 5. Применение результата под блокировкой
	var (
		state   wizard.Snapshot
		applied bool
	)
	err = uc.sessions.Update(req.UserID, func(s *wizard.Session) error {
		if fetchErr != nil {
			// Неудачный запрос ничего не меняет: прежняя доступность
			// (если была) остается действительной
			return nil
		}
		applied = s.ApplyAvailability(seq, key, availability)
		if applied {
			state = s.Snapshot()
		}
		return nil
	})
	if err != nil {
		return nil, uc.mapSessionError(req.UserID, err)
	}

	if fetchErr != nil {
		uc.logger.Error("GetAvailableSlots: availability fetch failed for user=%d, date=%s: %v",
			req.UserID, date, fetchErr)
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, fetchErr)
	}

	if !applied {
		uc.logger.Warn("GetAvailableSlots: discarding stale availability for user=%d, key=%s, seq=%d",
			req.UserID, key, seq)
		return nil, ErrSuperseded
	}

	uc.logger.Info("GetAvailableSlots: applied availability for user=%d, date=%s, staff=%d, slots=%d",
		req.UserID, date, len(availability), availability.SlotCount())
	return &Response{State: state}, nil
}

// toDomainAvailability конвертирует ответ SchedulingService в domain модель.
// Некорректные идентификаторы сотрудников и времена слотов пропускаются.
func (uc *UseCase) toDomainAvailability(resp *schedulingservice.AvailabilityResponse) domain.Availability {
	availability := make(domain.Availability, len(resp.Availability))

	for rawID, entry := range resp.Availability {
		staffID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: skipping availability entry with bad staff id=%q", rawID)
			continue
		}

		slots := make([]types.TimeString, 0, len(entry.Slots))
		for _, raw := range entry.Slots {
			slot, err := types.NewTimeStringFromString(raw)
			if err != nil {
				uc.logger.Warn("GetAvailableSlots: skipping bad slot time=%q for staff=%d", raw, staffID)
				continue
			}
			slots = append(slots, slot)
		}

		availability[staffID] = domain.StaffAvailability{
			StaffName:  entry.StaffName,
			Profession: entry.Profession,
			Slots:      slots,
		}
	}

	return availability
}

// mapSessionError приводит ошибки сессии к ошибкам usecase
func (uc *UseCase) mapSessionError(userID int64, err error) error {
	switch {
	case errors.Is(err, wizard.ErrWizardNotFound):
		uc.logger.Warn("GetAvailableSlots: no active wizard for user=%d", userID)
		return ErrWizardNotFound

	case errors.Is(err, wizard.ErrInvalidTransition):
		uc.logger.Warn("GetAvailableSlots: wizard of user=%d is not at the slot selection step", userID)
		return ErrInvalidStep

	case errors.Is(err, wizard.ErrEmptyCart),
		errors.Is(err, wizard.ErrNoDateSelected),
		errors.Is(err, wizard.ErrDateNotEligible):
		uc.logger.Warn("GetAvailableSlots: search preconditions not met for user=%d: %v", userID, err)
		return fmt.Errorf("%w: %v", ErrInvalidStep, err)

	default:
		uc.logger.Error("GetAvailableSlots: session error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: GetAvailableSlots - session error: %v", ErrInternal, err)
	}
}
