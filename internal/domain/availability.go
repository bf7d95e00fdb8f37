package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

// StaffAvailability slots one staff member can offer for the requested
// cart duration on the requested date
type StaffAvailability struct {
	StaffName  string
	Profession string
	Slots      []types.TimeString
}

// Availability maps staff id to the slots that can host the cart's total
// duration. An empty map is a legitimate result (никто не свободен),
// distinct from a failed search.
type Availability map[int64]StaffAvailability

// IsEmpty returns true if no staff member offered any slot
func (a Availability) IsEmpty() bool {
	for _, entry := range a {
		if len(entry.Slots) > 0 {
			return false
		}
	}
	return true
}

// HasSlot returns true if the given staff member offers the given start time
func (a Availability) HasSlot(staffID int64, startTime types.TimeString) bool {
	entry, ok := a[staffID]
	if !ok {
		return false
	}
	for _, slot := range entry.Slots {
		if slot == startTime {
			return true
		}
	}
	return false
}

// SlotCount returns the total number of offered slots across all staff
func (a Availability) SlotCount() int {
	count := 0
	for _, entry := range a {
		count += len(entry.Slots)
	}
	return count
}

// SelectedSlot is the slot the user picked from one availability entry
type SelectedSlot struct {
	StaffID   int64
	StaffName string
	StartTime types.TimeString
}

// AvailabilityKey builds the canonical key of an availability request.
// Ответ на запрос применяется только если его ключ совпадает с текущим
// ключом сессии - так устаревшие ответы отбрасываются (см. раздел
// про supersede в wizard.Session).
func AvailabilityKey(date time.Time, serviceIDs []int64) string {
	sorted := make([]int64, len(serviceIDs))
	copy(sorted, serviceIDs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprintf("%d", id)
	}

	return date.Format(DateFormat) + "|" + strings.Join(parts, ",")
}
