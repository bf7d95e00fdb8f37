package confirm_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

// UseCase подтверждения бронирования: отправка собранного визардом
// запроса в SchedulingService и сохранение локальной копии
type UseCase struct {
	schedClient SchedulingServiceClient
	sessions    SessionManager
	repo        ReservationRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	schedClient SchedulingServiceClient,
	sessions SessionManager,
	repo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedClient: schedClient,
		sessions:    sessions,
		repo:        repo,
		logger:      logger,
	}
}

// Execute выполняет подтверждение:
// 1. Валидация входных данных
// 2. Переход визарда в Submitting, сборка запроса и денормализованных данных
// 3. Создание бронирования в SchedulingService (вне блокировки)
// 4. При ошибке - возврат визарда пользователю (Confirming или SelectingSlot)
// 5. При успехе - сохранение локальной копии, завершение визарда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmReservation: confirming reservation for user=%d", req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	notes := normalizeNotes(req.Notes)

	// 2. Переход в Submitting под блокировкой. Пока идет отправка,
	// никакое другое событие не меняет сессию.
	var (
		payload      *domain.ReservationRequest
		totals       domain.CartTotals
		staffName    string
		serviceNames []string
	)
	err := uc.sessions.Update(req.UserID, func(s *wizard.Session) error {
		var beginErr error
		payload, beginErr = s.BeginSubmission(notes)
		if beginErr != nil {
			return beginErr
		}

		totals = s.Totals()
		staffName = s.SelectedSlot.StaffName
		serviceNames = lookupServiceNames(s.Catalog, payload.ServiceIDs)
		return nil
	})
	if err != nil {
		return nil, uc.mapSessionError(req.UserID, err)
	}

	// 3. Сетевой вызов вне блокировки менеджера
	created, submitErr := uc.schedClient.CreateReservation(ctx, &schedulingservice.CreateReservationRequest{
		UserID:     payload.UserID,
		StaffID:    payload.StaffID,
		ServiceIDs: payload.ServiceIDs,
		Date:       payload.Date.Format(domain.DateFormat),
		StartTime:  payload.StartTime.String(),
		Notes:      payload.Notes,
	})

	// 4. Ошибка отправки: визард возвращается пользователю с сообщением
	if submitErr != nil {
		return nil, uc.failSubmission(req.UserID, submitErr)
	}

	// 5. Локальная копия с денормализованными данными. Ошибка записи не
	// отменяет созданное бронирование - история догонит при синхронизации.
	record := uc.buildRecord(created, payload, totals, staffName, serviceNames)
	if _, repoErr := uc.repo.Create(ctx, record); repoErr != nil {
		uc.logger.Error("ConfirmReservation: failed to store local copy of reservation id=%d: %v",
			created.ID, repoErr)
	}

	var state wizard.Snapshot
	err = uc.sessions.Update(req.UserID, func(s *wizard.Session) error {
		s.CompleteSubmission()
		state = s.Snapshot()
		return nil
	})
	if err != nil {
		uc.logger.Error("ConfirmReservation: session finalize failed for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ConfirmReservation - session finalize failed: %v", ErrInternal, err)
	}

	// Завершенный визард освобождает пользователя для нового
	uc.sessions.Remove(req.UserID)

	uc.logger.Info("ConfirmReservation: reservation id=%d created for user=%d, status=%s",
		created.ID, req.UserID, created.Status)

	return &Response{
		ReservationID: created.ID,
		Status:        created.Status,
		State:         state,
	}, nil
}

// failSubmission возвращает визард пользователю после неудачной отправки.
// Конфликт слота сбрасывает выбранный слот и доступность; прочие ошибки
// оставляют визард на шаге подтверждения для повтора.
func (uc *UseCase) failSubmission(userID int64, submitErr error) error {
	slotConflict := errors.Is(submitErr, schedulingservice.ErrSlotConflict)

	message := submitErr.Error()
	var valErr *schedulingservice.ValidationError
	if errors.As(submitErr, &valErr) {
		message = valErr.Error()
	}

	if err := uc.sessions.Update(userID, func(s *wizard.Session) error {
		s.FailSubmission(message, slotConflict)
		return nil
	}); err != nil {
		uc.logger.Error("ConfirmReservation: session rollback failed for user=%d: %v", userID, err)
	}

	if slotConflict {
		uc.logger.Warn("ConfirmReservation: slot conflict for user=%d: %v", userID, submitErr)
		return fmt.Errorf("%w: %s", ErrSlotConflict, message)
	}

	uc.logger.Error("ConfirmReservation: submission failed for user=%d: %v", userID, submitErr)
	return fmt.Errorf("%w: %v", ErrSubmissionFailed, submitErr)
}

// buildRecord собирает локальную копию бронирования. Идентификатор и статус
// приходят от SchedulingService, имена и суммы берутся из снапшота визарда.
func (uc *UseCase) buildRecord(
	created *schedulingservice.Reservation,
	payload *domain.ReservationRequest,
	totals domain.CartTotals,
	staffName string,
	serviceNames []string,
) *domain.ReservationRecord {
	status := domain.ReservationStatus(created.Status)
	if !domain.IsValidStatus(status) {
		uc.logger.Warn("ConfirmReservation: unknown status=%q from scheduling service, storing as pending", created.Status)
		status = domain.StatusPending
	}

	totalPrice := created.TotalPrice
	if totalPrice.IsZero() {
		totalPrice = totals.TotalPrice
	}

	durationMinutes := created.DurationMinutes
	if durationMinutes <= 0 {
		durationMinutes = totals.TotalDurationMinutes
	}

	if created.StaffName != "" {
		staffName = created.StaffName
	}

	return &domain.ReservationRecord{
		ID:              created.ID,
		UserID:          payload.UserID,
		StaffID:         payload.StaffID,
		StaffName:       staffName,
		ServiceIDs:      payload.ServiceIDs,
		ServiceNames:    serviceNames,
		Date:            payload.Date,
		StartTime:       payload.StartTime,
		DurationMinutes: durationMinutes,
		TotalPrice:      totalPrice,
		Status:          status,
		Notes:           payload.Notes,
	}
}

// mapSessionError приводит ошибки сессии к ошибкам usecase
func (uc *UseCase) mapSessionError(userID int64, err error) error {
	switch {
	case errors.Is(err, wizard.ErrWizardNotFound):
		uc.logger.Warn("ConfirmReservation: no active wizard for user=%d", userID)
		return ErrWizardNotFound

	case errors.Is(err, wizard.ErrInvalidTransition):
		uc.logger.Warn("ConfirmReservation: wizard of user=%d is not at the confirmation step", userID)
		return ErrInvalidStep

	case errors.Is(err, wizard.ErrNoSlotSelected):
		uc.logger.Warn("ConfirmReservation: no slot selected for user=%d", userID)
		return ErrNoSlotSelected

	default:
		uc.logger.Error("ConfirmReservation: session error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ConfirmReservation - session error: %v", ErrInternal, err)
	}
}

// lookupServiceNames возвращает имена услуг корзины по снапшоту каталога.
// Для устаревших позиций имя неизвестно - подставляется заглушка.
func lookupServiceNames(catalog *domain.CatalogSnapshot, serviceIDs []int64) []string {
	names := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if svc, ok := catalog.Lookup(id); ok {
			names = append(names, svc.Name)
			continue
		}
		names = append(names, fmt.Sprintf("service #%d", id))
	}
	return names
}
