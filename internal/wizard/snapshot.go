package wizard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
)

// Snapshot is a read-only view of a session, safe to use outside the
// manager lock
type Snapshot struct {
	SessionID string
	UserID    int64
	Step      Step

	Catalog        []domain.CategoryGroup
	CartServiceIDs []int64

	TotalPrice           decimal.Decimal
	TotalDurationMinutes int
	TotalDurationLabel   string
	StaleServiceIDs      []int64

	SelectedDate time.Time
	Availability domain.Availability
	SelectedSlot *domain.SelectedSlot

	LastError string
}

// Snapshot builds a view of the session's current state.
// Должен вызываться под блокировкой менеджера (внутри Update).
func (s *Session) Snapshot() Snapshot {
	totals := s.Totals()

	snap := Snapshot{
		SessionID:            s.ID,
		UserID:               s.UserID,
		Step:                 s.Step,
		CartServiceIDs:       s.Cart.IDs(),
		TotalPrice:           totals.TotalPrice,
		TotalDurationMinutes: totals.TotalDurationMinutes,
		TotalDurationLabel:   domain.FormatDuration(totals.TotalDurationMinutes),
		StaleServiceIDs:      totals.StaleIDs,
		SelectedDate:         s.SelectedDate,
		LastError:            s.LastError,
	}

	if s.Catalog != nil {
		snap.Catalog = s.Catalog.GroupedByCategory()
	}

	if s.Availability != nil {
		availability := make(domain.Availability, len(s.Availability))
		for staffID, entry := range s.Availability {
			entryCopy := domain.StaffAvailability{
				StaffName:  entry.StaffName,
				Profession: entry.Profession,
			}
			entryCopy.Slots = append(entryCopy.Slots, entry.Slots...)
			availability[staffID] = entryCopy
		}
		snap.Availability = availability
	}

	if s.SelectedSlot != nil {
		slot := *s.SelectedSlot
		snap.SelectedSlot = &slot
	}

	return snap
}
