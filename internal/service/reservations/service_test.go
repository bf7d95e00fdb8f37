package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	reservationRepo "github.com/Isazzy/SBS-ReservationService/internal/infra/storage/reservation"
	schedClient "github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/service/reservations/models"
	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	records map[int64]*domain.ReservationRecord

	updatedID     int64
	updatedStatus domain.ReservationStatus
	updateCalls   int
	updateErr     error
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.ReservationRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeRepo) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.ReservationRecord, error) {
	var result []*domain.ReservationRecord
	for _, rec := range r.records {
		if rec.UserID != userID {
			continue
		}
		if status != nil && rec.Status != *status {
			continue
		}
		copied := *rec
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	rec, ok := r.records[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	rec.Status = status
	r.updatedID = id
	r.updatedStatus = status
	return nil
}

type fakeScheduler struct {
	err   error
	calls int
}

func (c *fakeScheduler) UpdateReservationStatus(ctx context.Context, reservationID int64, newStatus string) (*schedClient.Reservation, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &schedClient.Reservation{ID: reservationID, Status: newStatus}, nil
}

func testRecord(id int64, status domain.ReservationStatus) *domain.ReservationRecord {
	start, _ := types.NewTimeStringFromString("10:00")
	return &domain.ReservationRecord{
		ID:              id,
		UserID:          42,
		StaffID:         7,
		StaffName:       "Ana",
		ServiceIDs:      []int64{1, 2},
		ServiceNames:    []string{"Haircut", "Coloring"},
		Date:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: 135,
		TotalPrice:      decimal.NewFromInt(110),
		Status:          status,
	}
}

func newService(repo *fakeRepo, scheduler *fakeScheduler) *Service {
	return NewService(repo, scheduler, noopLogger{})
}

func TestRequestCancellation_FromPending(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusPending),
	}}
	scheduler := &fakeScheduler{}
	svc := newService(repo, scheduler)

	err := svc.RequestCancellation(context.Background(), 1001, 42)
	require.NoError(t, err)

	// Меняется только статус - запись не удаляется
	assert.Equal(t, domain.StatusCancellationRequested, repo.records[1001].Status)
	assert.Equal(t, 1, scheduler.calls)
}

func TestRequestCancellation_FromConfirmed(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusConfirmed),
	}}
	svc := newService(repo, &fakeScheduler{})

	require.NoError(t, svc.RequestCancellation(context.Background(), 1001, 42))
	assert.Equal(t, domain.StatusCancellationRequested, repo.records[1001].Status)
}

func TestRequestCancellation_RejectedForFinishedReservation(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusCancellationRequested,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
				1001: testRecord(1001, status),
			}}
			scheduler := &fakeScheduler{}
			svc := newService(repo, scheduler)

			err := svc.RequestCancellation(context.Background(), 1001, 42)
			assert.ErrorIs(t, err, ErrCannotCancel)

			// Запись не тронута, внешний сервис не вызывался
			assert.Equal(t, status, repo.records[1001].Status)
			assert.Zero(t, scheduler.calls)
		})
	}
}

func TestRequestCancellation_OnlyOwnerMayRequest(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusPending),
	}}
	svc := newService(repo, &fakeScheduler{})

	err := svc.RequestCancellation(context.Background(), 1001, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.records[1001].Status)
}

func TestRequestCancellation_NotFound(t *testing.T) {
	svc := newService(&fakeRepo{records: map[int64]*domain.ReservationRecord{}}, &fakeScheduler{})

	err := svc.RequestCancellation(context.Background(), 1001, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRequestCancellation_ExternalFailureLeavesLocalUnchanged(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusPending),
	}}
	scheduler := &fakeScheduler{err: schedClient.ErrUnavailable}
	svc := newService(repo, scheduler)

	err := svc.RequestCancellation(context.Background(), 1001, 42)
	assert.ErrorIs(t, err, ErrSchedulerUnavailable)

	// Внешний вызов не прошел - локальная копия не меняется
	assert.Equal(t, domain.StatusPending, repo.records[1001].Status)
	assert.Zero(t, repo.updateCalls)
}

func TestRequestCancellation_ExternalStatusConflict(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusPending),
	}}
	scheduler := &fakeScheduler{err: schedClient.ErrStatusConflict}
	svc := newService(repo, scheduler)

	err := svc.RequestCancellation(context.Background(), 1001, 42)
	assert.ErrorIs(t, err, ErrStatusConflict)
	assert.Equal(t, domain.StatusPending, repo.records[1001].Status)
}

func TestGetUserReservations_OwnListOnly(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusPending),
	}}
	svc := newService(repo, &fakeScheduler{})

	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:      42,
		RequesterID: 99,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserReservations_FiltersByStatus(t *testing.T) {
	pending := testRecord(1001, domain.StatusPending)
	completed := testRecord(1002, domain.StatusCompleted)
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: pending,
		1002: completed,
	}}
	svc := newService(repo, &fakeScheduler{})

	status := string(domain.StatusCompleted)
	result, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:      42,
		RequesterID: 42,
		Status:      &status,
	})
	require.NoError(t, err)

	require.Len(t, result.Reservations, 1)
	assert.Equal(t, int64(1002), result.Reservations[0].ID)
	assert.Equal(t, "2h 15min", result.Reservations[0].DurationLabel)
}

func TestGetUserReservations_RejectsUnknownStatus(t *testing.T) {
	svc := newService(&fakeRepo{records: map[int64]*domain.ReservationRecord{}}, &fakeScheduler{})

	bogus := "bogus"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:      42,
		RequesterID: 42,
		Status:      &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_OperatorFlow(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusCancellationRequested),
	}}
	scheduler := &fakeScheduler{}
	svc := newService(repo, scheduler)

	err := svc.UpdateStatus(context.Background(), 1001, &models.UpdateStatusRequest{
		Status: string(domain.StatusCancelled),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.records[1001].Status)
	assert.Equal(t, 1, scheduler.calls)
}

func TestUpdateStatus_RejectsInvalidStatus(t *testing.T) {
	repo := &fakeRepo{records: map[int64]*domain.ReservationRecord{
		1001: testRecord(1001, domain.StatusPending),
	}}
	svc := newService(repo, &fakeScheduler{})

	err := svc.UpdateStatus(context.Background(), 1001, &models.UpdateStatusRequest{Status: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
