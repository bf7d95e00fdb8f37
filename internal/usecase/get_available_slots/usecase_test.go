package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/integrations/schedulingservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

var (
	testNow  = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC) // понедельник
	testDate = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)  // среда
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type fakeSchedClient struct {
	response *schedulingservice.AvailabilityResponse
	err      error

	// onCall выполняется до возврата ответа: имитация событий,
	// произошедших пока ответ был в полете
	onCall func()

	calls int
}

func (c *fakeSchedClient) GetAvailability(ctx context.Context, date string, serviceIDs []int64) (*schedulingservice.AvailabilityResponse, error) {
	c.calls++
	if c.onCall != nil {
		c.onCall()
	}
	return c.response, c.err
}

func availabilityResponse() *schedulingservice.AvailabilityResponse {
	return &schedulingservice.AvailabilityResponse{
		Availability: map[string]schedulingservice.StaffAvailability{
			"7": {StaffName: "Ana", Profession: "stylist", Slots: []string{"10:00", "12:30"}},
		},
	}
}

// newSessionAtSlotStep создает менеджер с сессией на шаге выбора слота
func newSessionAtSlotStep(t *testing.T) *wizard.Manager {
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
		if err := s.Advance(testNow); err != nil {
			return err
		}
		if err := s.SelectDate(testDate, testNow); err != nil {
			return err
		}
		return s.Advance(testNow)
	}))

	return manager
}

func TestGetAvailableSlots_Success(t *testing.T) {
	manager := newSessionAtSlotStep(t)
	client := &fakeSchedClient{response: availabilityResponse()}
	uc := NewUseCase(client, manager, fixedTimeProvider{testNow}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)

	require.Contains(t, resp.State.Availability, int64(7))
	assert.Equal(t, "Ana", resp.State.Availability[7].StaffName)
	assert.Len(t, resp.State.Availability[7].Slots, 2)
	assert.Equal(t, 1, client.calls)
}

func TestGetAvailableSlots_EmptyResultIsNotAnError(t *testing.T) {
	manager := newSessionAtSlotStep(t)
	client := &fakeSchedClient{response: &schedulingservice.AvailabilityResponse{
		Availability: map[string]schedulingservice.StaffAvailability{},
	}}
	uc := NewUseCase(client, manager, fixedTimeProvider{testNow}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)

	// "Никто не свободен" - легитимный результат, отличный от ошибки поиска
	assert.NotNil(t, resp.State.Availability)
	assert.Empty(t, resp.State.Availability)
}

func TestGetAvailableSlots_CartChangedMidFlightDiscardsResult(t *testing.T) {
	manager := newSessionAtSlotStep(t)
	client := &fakeSchedClient{response: availabilityResponse()}
	client.onCall = func() {
		// Пока запрос в полете, пользователь меняет корзину
		require.NoError(t, manager.Update(42, func(s *wizard.Session) error {
			_, err := s.ToggleService(2)
			return err
		}))
	}
	uc := NewUseCase(client, manager, fixedTimeProvider{testNow}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrSuperseded)

	// Устаревший результат не сохранился в сессии
	require.NoError(t, manager.Update(42, func(s *wizard.Session) error {
		assert.Nil(t, s.Availability)
		return nil
	}))
}

func TestGetAvailableSlots_TransportFailureIsRetryable(t *testing.T) {
	manager := newSessionAtSlotStep(t)
	client := &fakeSchedClient{err: schedulingservice.ErrUnavailable}
	uc := NewUseCase(client, manager, fixedTimeProvider{testNow}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrSearchFailed)

	// Повторный поиск после восстановления сервиса проходит
	client.err = nil
	client.response = availabilityResponse()

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)
	assert.Contains(t, resp.State.Availability, int64(7))
}

func TestGetAvailableSlots_SkipsMalformedEntries(t *testing.T) {
	manager := newSessionAtSlotStep(t)
	client := &fakeSchedClient{response: &schedulingservice.AvailabilityResponse{
		Availability: map[string]schedulingservice.StaffAvailability{
			"7":      {StaffName: "Ana", Slots: []string{"10:00", "25:99", "bogus"}},
			"not-id": {StaffName: "Ghost", Slots: []string{"11:00"}},
		},
	}}
	uc := NewUseCase(client, manager, fixedTimeProvider{testNow}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)

	require.Contains(t, resp.State.Availability, int64(7))
	assert.Len(t, resp.State.Availability[7].Slots, 1)
	assert.Len(t, resp.State.Availability, 1)
}

func TestGetAvailableSlots_WrongStepRejected(t *testing.T) {
	manager := wizard.NewManager(nil)
	_, err := manager.Start(42, domain.NewCatalogSnapshot(nil), nil)
	require.NoError(t, err)

	client := &fakeSchedClient{}
	uc := NewUseCase(client, manager, fixedTimeProvider{testNow}, noopLogger{})

	_, err = uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.Zero(t, client.calls, "no network call before preconditions pass")
}

func TestGetAvailableSlots_NoWizard(t *testing.T) {
	uc := NewUseCase(&fakeSchedClient{}, wizard.NewManager(nil), fixedTimeProvider{testNow}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrWizardNotFound)
}
