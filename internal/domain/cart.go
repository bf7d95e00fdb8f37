package domain

import "github.com/shopspring/decimal"

// Cart is the ordered set of selected service ids, without duplicates.
// Cart is a pure value holder: invalidation of availability and the
// selected slot on cart changes is propagated by the wizard session.
type Cart struct {
	ids []int64
}

// CartTotals aggregate values derived from the cart against a catalog snapshot
type CartTotals struct {
	TotalPrice           decimal.Decimal
	TotalDurationMinutes int

	// StaleIDs ids, которых больше нет в снапшоте каталога
	// Такие позиции дают нулевой вклад в суммы и подлежат удалению
	StaleIDs []int64
}

// Toggle adds the id if absent and removes it if present.
// Ids unknown to the snapshot are ignored (защита от гонки с каталогом).
// Returns true if the cart was changed.
func (c *Cart) Toggle(id int64, catalog *CatalogSnapshot) bool {
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			return true
		}
	}

	if catalog == nil || !catalog.Has(id) {
		return false
	}

	c.ids = append(c.ids, id)
	return true
}

// Contains returns true if the service id is in the cart
func (c *Cart) Contains(id int64) bool {
	for _, existing := range c.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the selected service ids in selection order
func (c *Cart) IDs() []int64 {
	ids := make([]int64, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Len returns the number of services in the cart
func (c *Cart) Len() int {
	return len(c.ids)
}

// IsEmpty returns true if no services are selected
func (c *Cart) IsEmpty() bool {
	return len(c.ids) == 0
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.ids = nil
}

// Aggregate computes total price and total duration over the cart members
// using the given catalog snapshot. Ids missing from the snapshot contribute
// zero to both sums and are reported in StaleIDs.
func (c *Cart) Aggregate(catalog *CatalogSnapshot) CartTotals {
	totals := CartTotals{TotalPrice: decimal.Zero}

	for _, id := range c.ids {
		if catalog == nil {
			totals.StaleIDs = append(totals.StaleIDs, id)
			continue
		}

		service, ok := catalog.Lookup(id)
		if !ok {
			totals.StaleIDs = append(totals.StaleIDs, id)
			continue
		}

		totals.TotalPrice = totals.TotalPrice.Add(service.Price)
		totals.TotalDurationMinutes += service.DurationMinutes
	}

	return totals
}
