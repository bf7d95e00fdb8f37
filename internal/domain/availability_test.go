package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

func TestAvailabilityKey_OrderInsensitive(t *testing.T) {
	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	// Ключ не зависит от порядка выбора услуг в корзине
	assert.Equal(t, AvailabilityKey(date, []int64{3, 1, 2}), AvailabilityKey(date, []int64{1, 2, 3}))
	assert.Equal(t, "2026-09-16|1,2,3", AvailabilityKey(date, []int64{2, 3, 1}))
}

func TestAvailabilityKey_DistinguishesDateAndCart(t *testing.T) {
	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	other := time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)

	assert.NotEqual(t, AvailabilityKey(date, []int64{1}), AvailabilityKey(other, []int64{1}))
	assert.NotEqual(t, AvailabilityKey(date, []int64{1}), AvailabilityKey(date, []int64{1, 2}))
}

func TestAvailability_HasSlot(t *testing.T) {
	slot, _ := types.NewTimeStringFromString("10:00")
	other, _ := types.NewTimeStringFromString("11:30")

	availability := Availability{
		7: {StaffName: "Ana", Profession: "stylist", Slots: []types.TimeString{slot}},
	}

	assert.True(t, availability.HasSlot(7, slot))
	assert.False(t, availability.HasSlot(7, other))
	assert.False(t, availability.HasSlot(8, slot))
}

func TestAvailability_IsEmpty(t *testing.T) {
	slot, _ := types.NewTimeStringFromString("10:00")

	assert.True(t, Availability{}.IsEmpty())
	assert.True(t, Availability{7: {StaffName: "Ana"}}.IsEmpty())
	assert.False(t, Availability{7: {Slots: []types.TimeString{slot}}}.IsEmpty())
}

func TestAvailability_SlotCount(t *testing.T) {
	s1, _ := types.NewTimeStringFromString("10:00")
	s2, _ := types.NewTimeStringFromString("12:00")

	availability := Availability{
		1: {Slots: []types.TimeString{s1, s2}},
		2: {Slots: []types.TimeString{s1}},
	}

	assert.Equal(t, 3, availability.SlotCount())
}
