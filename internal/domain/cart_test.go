package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *CatalogSnapshot {
	return NewCatalogSnapshot([]Service{
		{ID: 1, Name: "Haircut", Category: "Hair", Price: decimal.NewFromInt(30), DurationMinutes: 45, Active: true},
		{ID: 2, Name: "Coloring", Category: "Hair", Price: decimal.NewFromInt(80), DurationMinutes: 90, Active: true},
		{ID: 3, Name: "Manicure", Category: "Nails", Price: decimal.NewFromInt(25), DurationMinutes: 30, Active: true},
		{ID: 4, Name: "Old service", Category: "Hair", Price: decimal.NewFromInt(10), DurationMinutes: 15, Active: false},
	})
}

func TestCart_ToggleAddsAndRemoves(t *testing.T) {
	catalog := testCatalog()
	var cart Cart

	require.True(t, cart.Toggle(1, catalog))
	assert.True(t, cart.Contains(1))
	assert.Equal(t, 1, cart.Len())

	// Повторный toggle той же услуги убирает ее из корзины
	require.True(t, cart.Toggle(1, catalog))
	assert.False(t, cart.Contains(1))
	assert.True(t, cart.IsEmpty())
}

func TestCart_ToggleUnknownServiceIsNoop(t *testing.T) {
	catalog := testCatalog()
	var cart Cart

	assert.False(t, cart.Toggle(999, catalog))
	assert.True(t, cart.IsEmpty())

	// Неактивные услуги не попадают в снапшот и не добавляются
	assert.False(t, cart.Toggle(4, catalog))
	assert.True(t, cart.IsEmpty())
}

func TestCart_ToggleRemovesEvenIfMissingFromCatalog(t *testing.T) {
	catalog := testCatalog()
	var cart Cart

	require.True(t, cart.Toggle(2, catalog))

	// Услуга пропала из каталога, но из корзины ее убрать можно
	empty := NewCatalogSnapshot(nil)
	assert.True(t, cart.Toggle(2, empty))
	assert.True(t, cart.IsEmpty())
}

func TestCart_AggregateSumsPriceAndDuration(t *testing.T) {
	catalog := testCatalog()
	var cart Cart

	cart.Toggle(1, catalog)
	cart.Toggle(2, catalog)
	cart.Toggle(3, catalog)

	totals := cart.Aggregate(catalog)

	assert.True(t, totals.TotalPrice.Equal(decimal.NewFromInt(135)), "expected 135, got %s", totals.TotalPrice)
	assert.Equal(t, 165, totals.TotalDurationMinutes)
	assert.Empty(t, totals.StaleIDs)
}

func TestCart_AggregateFlagsStaleServices(t *testing.T) {
	catalog := testCatalog()
	var cart Cart

	cart.Toggle(1, catalog)
	cart.Toggle(3, catalog)

	// Услуга 3 исчезла из каталога: вклад нулевой, позиция помечена устаревшей
	reduced := NewCatalogSnapshot([]Service{
		{ID: 1, Name: "Haircut", Category: "Hair", Price: decimal.NewFromInt(30), DurationMinutes: 45, Active: true},
	})

	totals := cart.Aggregate(reduced)

	assert.True(t, totals.TotalPrice.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 45, totals.TotalDurationMinutes)
	assert.Equal(t, []int64{3}, totals.StaleIDs)
}

func TestCart_IDsReturnsCopy(t *testing.T) {
	catalog := testCatalog()
	var cart Cart

	cart.Toggle(1, catalog)
	ids := cart.IDs()
	ids[0] = 777

	assert.True(t, cart.Contains(1))
	assert.False(t, cart.Contains(777))
}
