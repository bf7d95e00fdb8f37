package wizard

import (
	"sync"
	"time"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
)

// Gauge интерфейс для метрики количества активных сессий
type Gauge interface {
	Set(float64)
}

// Manager owns the wizard sessions, one per user. Все чтения и мутации
// сессии проходят через менеджер под общей блокировкой - это обеспечивает
// последовательную, наблюдаемую между событиями модель из одного владельца.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	gauge    Gauge // может быть nil, если метрики выключены
}

// NewManager creates an empty session registry. gauge may be nil.
func NewManager(gauge Gauge) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		gauge:    gauge,
	}
}

// Start creates a new wizard session for the user. Пока у пользователя есть
// незавершенный визард, второй начать нельзя - возвращается ErrWizardInProgress.
func (m *Manager) Start(userID int64, catalog *domain.CatalogSnapshot, staff []domain.StaffSchedule) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[userID]; exists {
		return nil, ErrWizardInProgress
	}

	session := NewSession(userID, catalog, staff)
	m.sessions[userID] = session
	m.setGauge()

	return session, nil
}

// Update runs fn over the user's session under the manager lock.
// fn должна быть чистой (без сетевых вызовов и блокирующих операций).
func (m *Manager) Update(userID int64, fn func(s *Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[userID]
	if !exists {
		return ErrWizardNotFound
	}

	if err := fn(session); err != nil {
		return err
	}

	session.UpdatedAt = time.Now()
	return nil
}

// Remove discards the user's session, if any
func (m *Manager) Remove(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
	m.setGauge()
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) setGauge() {
	if m.gauge != nil {
		m.gauge.Set(float64(len(m.sessions)))
	}
}
