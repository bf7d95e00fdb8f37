package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	reservationRepo "github.com/Isazzy/SBS-ReservationService/internal/infra/storage/reservation"
	schedClient "github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с локальным списком бронирований:
// история клиента, запрос отмены и операторская смена статуса
type Service struct {
	repo        ReservationRepository
	schedClient SchedulingServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo ReservationRepository,
	schedClient SchedulingServiceClient,
	logger Logger,
) *Service {
	return &Service{
		repo:        repo,
		schedClient: schedClient,
		logger:      logger,
	}
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу; пользователь видит только свой список
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	if req.UserID != req.RequesterID {
		s.logger.Warn("GetUserReservations: access denied for requester=%d to user=%d list", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки, если указан
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	records, err := s.repo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(records), req.UserID)
	return models.FromDomainReservationList(records), nil
}

// RequestCancellation помечает бронирование как "запрошена отмена".
// Разрешено только владельцу и только из статусов pending/confirmed.
// Запись не удаляется и не перезаписывается - меняется один статус,
// и только после успешного вызова внешнего сервиса (оптимистичный патч).
func (s *Service) RequestCancellation(ctx context.Context, reservationID int64, requesterID int64) error {
	s.logger.Info("RequestCancellation: reservation id=%d by user=%d", reservationID, requesterID)

	record, err := s.repo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("RequestCancellation: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("RequestCancellation: repository error for id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: RequestCancellation - repository error: %v", ErrInternal, err)
	}

	// Клиент может запросить отмену только своего бронирования
	if record.UserID != requesterID {
		s.logger.Warn("RequestCancellation: access denied for user=%d to reservation id=%d", requesterID, reservationID)
		return ErrAccessDenied
	}

	if !record.CanRequestCancellation() {
		s.logger.Warn("RequestCancellation: reservation id=%d in status=%s, cancellation not allowed",
			reservationID, record.Status)
		return ErrCannotCancel
	}

	// Сначала внешний сервис; при его ошибке локальный список не меняется
	if _, err := s.schedClient.UpdateReservationStatus(ctx, reservationID, string(domain.StatusCancellationRequested)); err != nil {
		return s.mapSchedulerError("RequestCancellation", reservationID, err)
	}

	if err := s.repo.UpdateStatus(ctx, reservationID, domain.StatusCancellationRequested); err != nil {
		// Внешний статус уже изменен - локальная копия догонит при следующей синхронизации
		s.logger.Error("RequestCancellation: local patch failed for id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: RequestCancellation - local patch failed: %v", ErrInternal, err)
	}

	s.logger.Info("RequestCancellation: reservation id=%d marked as cancellation_requested", reservationID)
	return nil
}

// UpdateStatus операторская смена статуса бронирования (подтверждение,
// отмена по запросу, завершение). Доступ оператора контролируется
// вне этого сервиса.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: reservation id=%d -> status=%s", reservationID, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return ErrInvalidStatus
	}

	if _, err := s.repo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if _, err := s.schedClient.UpdateReservationStatus(ctx, reservationID, string(newStatus)); err != nil {
		return s.mapSchedulerError("UpdateStatus", reservationID, err)
	}

	if err := s.repo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		s.logger.Error("UpdateStatus: local patch failed for id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - local patch failed: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation id=%d updated to status=%s", reservationID, newStatus)
	return nil
}

// mapSchedulerError приводит ошибки клиента SchedulingService к ошибкам сервиса
func (s *Service) mapSchedulerError(op string, reservationID int64, err error) error {
	switch {
	case errors.Is(err, schedClient.ErrReservationNotFound):
		s.logger.Warn("%s: reservation id=%d not found in scheduling service", op, reservationID)
		return ErrReservationNotFound

	case errors.Is(err, schedClient.ErrStatusConflict):
		s.logger.Warn("%s: status conflict for reservation id=%d: %v", op, reservationID, err)
		return ErrStatusConflict

	case errors.Is(err, schedClient.ErrUnavailable):
		s.logger.Error("%s: scheduling service unavailable for reservation id=%d: %v", op, reservationID, err)
		return fmt.Errorf("%w: %v", ErrSchedulerUnavailable, err)

	default:
		s.logger.Error("%s: scheduling service error for reservation id=%d: %v", op, reservationID, err)
		return fmt.Errorf("%w: %s - scheduling service error: %v", ErrInternal, op, err)
	}
}
