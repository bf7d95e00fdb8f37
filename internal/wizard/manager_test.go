package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
)

type fakeGauge struct {
	value float64
}

func (g *fakeGauge) Set(v float64) { g.value = v }

func TestManager_SingleWizardPerUser(t *testing.T) {
	m := NewManager(nil)
	catalog := domain.NewCatalogSnapshot(nil)

	_, err := m.Start(42, catalog, nil)
	require.NoError(t, err)

	// Пока визард не завершен, второй начать нельзя
	_, err = m.Start(42, catalog, nil)
	assert.ErrorIs(t, err, ErrWizardInProgress)

	// У другого пользователя свой визард
	_, err = m.Start(43, catalog, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Count())
}

func TestManager_RemoveAllowsRestart(t *testing.T) {
	m := NewManager(nil)
	catalog := domain.NewCatalogSnapshot(nil)

	_, err := m.Start(42, catalog, nil)
	require.NoError(t, err)

	m.Remove(42)

	_, err = m.Start(42, catalog, nil)
	assert.NoError(t, err)
}

func TestManager_RemoveIsIdempotent(t *testing.T) {
	m := NewManager(nil)

	m.Remove(42)
	assert.Equal(t, 0, m.Count())
}

func TestManager_UpdateUnknownUser(t *testing.T) {
	m := NewManager(nil)

	err := m.Update(42, func(s *Session) error { return nil })
	assert.ErrorIs(t, err, ErrWizardNotFound)
}

func TestManager_UpdatePropagatesError(t *testing.T) {
	m := NewManager(nil)
	_, err := m.Start(42, domain.NewCatalogSnapshot(nil), nil)
	require.NoError(t, err)

	err = m.Update(42, func(s *Session) error { return ErrEmptyCart })
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestManager_GaugeTracksSessionCount(t *testing.T) {
	gauge := &fakeGauge{}
	m := NewManager(gauge)
	catalog := domain.NewCatalogSnapshot(nil)

	_, err := m.Start(1, catalog, nil)
	require.NoError(t, err)
	_, err = m.Start(2, catalog, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(2), gauge.value)

	m.Remove(1)
	assert.Equal(t, float64(1), gauge.value)
}
