package confirm_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

var (
	testNow  = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC) // понедельник
	testDate = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)  // среда
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeSchedClient struct {
	created *schedulingservice.Reservation
	err     error

	lastRequest *schedulingservice.CreateReservationRequest
}

func (c *fakeSchedClient) CreateReservation(ctx context.Context, req *schedulingservice.CreateReservationRequest) (*schedulingservice.Reservation, error) {
	c.lastRequest = req
	if c.err != nil {
		return nil, c.err
	}
	return c.created, nil
}

type fakeRepo struct {
	created *domain.ReservationRecord
	err     error
}

func (r *fakeRepo) Create(ctx context.Context, rec *domain.ReservationRecord) (*domain.ReservationRecord, error) {
	r.created = rec
	if r.err != nil {
		return nil, r.err
	}
	return rec, nil
}

func mustTime(t *testing.T, raw string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(raw)
	require.NoError(t, err)
	return ts
}

// newManagerAtConfirmStep создает менеджер с сессией на шаге подтверждения
func newManagerAtConfirmStep(t *testing.T) *wizard.Manager {
	t.Helper()

	catalog := domain.NewCatalogSnapshot([]domain.Service{
		{ID: 1, Name: "Haircut", Category: "Hair", Price: decimal.NewFromInt(30), DurationMinutes: 45, Active: true},
		{ID: 2, Name: "Coloring", Category: "Hair", Price: decimal.NewFromInt(80), DurationMinutes: 90, Active: true},
	})
	staff := []domain.StaffSchedule{
		domain.NewStaffSchedule(7, "Ana", "stylist", []string{"monday", "wednesday"}),
	}

	manager := wizard.NewManager(nil)
	_, err := manager.Start(42, catalog, staff)
	require.NoError(t, err)

	require.NoError(t, manager.Update(42, func(s *wizard.Session) error {
		if _, err := s.ToggleService(1); err != nil {
			return err
		}
		if _, err := s.ToggleService(2); err != nil {
			return err
		}
		if err := s.Advance(testNow); err != nil {
			return err
		}
		if err := s.SelectDate(testDate, testNow); err != nil {
			return err
		}
		if err := s.Advance(testNow); err != nil {
			return err
		}

		seq, key, err := s.BeginAvailabilityFetch(testNow)
		if err != nil {
			return err
		}
		s.ApplyAvailability(seq, key, domain.Availability{
			7: {StaffName: "Ana", Profession: "stylist", Slots: []types.TimeString{mustTime(t, "10:00")}},
		})

		return s.ChooseSlot(7, mustTime(t, "10:00"))
	}))

	return manager
}

func createdReservation() *schedulingservice.Reservation {
	return &schedulingservice.Reservation{
		ID:              1001,
		UserID:          42,
		StaffID:         7,
		StaffName:       "Ana",
		ServiceIDs:      []int64{1, 2},
		Date:            "2026-09-16",
		StartTime:       "10:00",
		DurationMinutes: 135,
		TotalPrice:      decimal.NewFromInt(110),
		Status:          "pending",
	}
}

func TestConfirmReservation_Success(t *testing.T) {
	manager := newManagerAtConfirmStep(t)
	client := &fakeSchedClient{created: createdReservation()}
	repo := &fakeRepo{}
	uc := NewUseCase(client, manager, repo, noopLogger{})

	notes := "у окна, пожалуйста"
	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), resp.ReservationID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, wizard.StepSuccess, resp.State.Step)

	// Запрос во внешний сервис собран из состояния визарда
	require.NotNil(t, client.lastRequest)
	assert.Equal(t, int64(42), client.lastRequest.UserID)
	assert.Equal(t, int64(7), client.lastRequest.StaffID)
	assert.Equal(t, []int64{1, 2}, client.lastRequest.ServiceIDs)
	assert.Equal(t, "2026-09-16", client.lastRequest.Date)
	assert.Equal(t, "10:00", client.lastRequest.StartTime)
	require.NotNil(t, client.lastRequest.Notes)
	assert.Equal(t, notes, *client.lastRequest.Notes)

	// Локальная копия денормализована на момент создания
	require.NotNil(t, repo.created)
	assert.Equal(t, int64(1001), repo.created.ID)
	assert.Equal(t, "Ana", repo.created.StaffName)
	assert.Equal(t, []string{"Haircut", "Coloring"}, repo.created.ServiceNames)
	assert.True(t, repo.created.TotalPrice.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, domain.StatusPending, repo.created.Status)

	// Завершенный визард удален - можно начинать новый
	assert.Equal(t, 0, manager.Count())
}

func TestConfirmReservation_SlotConflictReturnsToSlotSelection(t *testing.T) {
	manager := newManagerAtConfirmStep(t)
	client := &fakeSchedClient{err: &schedulingservice.ValidationError{
		Message: "slot already taken",
		Fields:  map[string]string{"timeOfDay": "недоступно"},
	}}
	repo := &fakeRepo{}
	uc := NewUseCase(client, manager, repo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.created)

	require.NoError(t, manager.Update(42, func(s *wizard.Session) error {
		// Конфликт: слот и доступность сброшены, корзина и дата сохранены
		assert.Equal(t, wizard.StepSelectingSlot, s.Step)
		assert.Nil(t, s.SelectedSlot)
		assert.Nil(t, s.Availability)
		assert.Equal(t, []int64{1, 2}, s.Cart.IDs())
		assert.Equal(t, testDate, s.SelectedDate)
		assert.Contains(t, s.LastError, "slot already taken")
		return nil
	}))
}

func TestConfirmReservation_GenericFailureKeepsSlotForRetry(t *testing.T) {
	manager := newManagerAtConfirmStep(t)
	client := &fakeSchedClient{err: schedulingservice.ErrUnavailable}
	repo := &fakeRepo{}
	uc := NewUseCase(client, manager, repo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	require.NoError(t, manager.Update(42, func(s *wizard.Session) error {
		// Прочая ошибка: визард возвращается на подтверждение со слотом
		assert.Equal(t, wizard.StepConfirming, s.Step)
		assert.NotNil(t, s.SelectedSlot)
		assert.NotEmpty(t, s.LastError)
		return nil
	}))

	// Повтор по явному действию пользователя проходит
	client.err = nil
	client.created = createdReservation()

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), resp.ReservationID)
}

func TestConfirmReservation_LocalStoreFailureDoesNotFailSubmission(t *testing.T) {
	manager := newManagerAtConfirmStep(t)
	client := &fakeSchedClient{created: createdReservation()}
	repo := &fakeRepo{err: assert.AnError}
	uc := NewUseCase(client, manager, repo, noopLogger{})

	// Бронирование создано во внешнем сервисе - ошибка локальной записи
	// не делает операцию неуспешной
	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, wizard.StepSuccess, resp.State.Step)
}

func TestConfirmReservation_NotesTooLong(t *testing.T) {
	manager := newManagerAtConfirmStep(t)
	client := &fakeSchedClient{created: createdReservation()}
	uc := NewUseCase(client, manager, &fakeRepo{}, noopLogger{})

	long := strings.Repeat("x", domain.MaxNotesLength+1)
	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Notes: &long})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, client.lastRequest, "no submission on invalid input")
}

func TestConfirmReservation_EmptyNotesNotSent(t *testing.T) {
	manager := newManagerAtConfirmStep(t)
	client := &fakeSchedClient{created: createdReservation()}
	uc := NewUseCase(client, manager, &fakeRepo{}, noopLogger{})

	blank := "   "
	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Notes: &blank})
	require.NoError(t, err)
	assert.Nil(t, client.lastRequest.Notes)
}

func TestConfirmReservation_WrongStepRejected(t *testing.T) {
	manager := wizard.NewManager(nil)
	_, err := manager.Start(42, domain.NewCatalogSnapshot(nil), nil)
	require.NoError(t, err)

	uc := NewUseCase(&fakeSchedClient{}, manager, &fakeRepo{}, noopLogger{})

	_, err = uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestConfirmReservation_NoWizard(t *testing.T) {
	uc := NewUseCase(&fakeSchedClient{}, wizard.NewManager(nil), &fakeRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrWizardNotFound)
}
