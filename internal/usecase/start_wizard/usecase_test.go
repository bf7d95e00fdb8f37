package start_wizard

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isazzy/SBS-ReservationService/internal/integrations/salonservice"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeSalonClient struct {
	services    []salonservice.Service
	staff       []salonservice.StaffMember
	servicesErr error
	staffErr    error
}

func (c *fakeSalonClient) GetActiveServices(ctx context.Context) ([]salonservice.Service, error) {
	return c.services, c.servicesErr
}

func (c *fakeSalonClient) GetStaffMembers(ctx context.Context) ([]salonservice.StaffMember, error) {
	return c.staff, c.staffErr
}

func testSalonClient() *fakeSalonClient {
	return &fakeSalonClient{
		services: []salonservice.Service{
			{ID: 1, Name: "Haircut", Category: "Hair", Price: decimal.NewFromInt(30), DurationMinutes: 45, Active: true},
			{ID: 2, Name: "Retired", Category: "Hair", Price: decimal.NewFromInt(10), DurationMinutes: 15, Active: false},
		},
		staff: []salonservice.StaffMember{
			{ID: 7, Name: "Ana", Profession: "stylist", WorkingWeekdays: []string{"Miércoles", "friday"}},
		},
	}
}

func TestStartWizard_Success(t *testing.T) {
	manager := wizard.NewManager(nil)
	uc := NewUseCase(testSalonClient(), manager, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)

	assert.Equal(t, wizard.StepSelectingServices, resp.State.Step)
	assert.Empty(t, resp.State.CartServiceIDs)
	// Неактивные услуги в снапшот каталога не попадают
	require.Len(t, resp.State.Catalog, 1)
	require.Len(t, resp.State.Catalog[0].Services, 1)
	assert.Equal(t, int64(1), resp.State.Catalog[0].Services[0].ID)
	assert.Equal(t, 1, manager.Count())
}

func TestStartWizard_SecondStartRejected(t *testing.T) {
	manager := wizard.NewManager(nil)
	uc := NewUseCase(testSalonClient(), manager, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrWizardInProgress)
	assert.Equal(t, 1, manager.Count())
}

func TestStartWizard_CatalogUnavailable(t *testing.T) {
	client := testSalonClient()
	client.servicesErr = salonservice.ErrUnavailable
	manager := wizard.NewManager(nil)
	uc := NewUseCase(client, manager, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	// Сессия не создается, пока справочники не загружены
	assert.Equal(t, 0, manager.Count())
}

func TestStartWizard_StaffUnavailable(t *testing.T) {
	client := testSalonClient()
	client.staffErr = salonservice.ErrUnavailable
	manager := wizard.NewManager(nil)
	uc := NewUseCase(client, manager, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
}

func TestStartWizard_InvalidUserID(t *testing.T) {
	uc := NewUseCase(testSalonClient(), wizard.NewManager(nil), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
