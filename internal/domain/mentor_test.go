package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekday(t *testing.T) {
	day, ok := ParseWeekday("Wednesday")
	assert.True(t, ok)
	assert.Equal(t, Wednesday, day)

	_, ok = ParseWeekday("wednesday")
	assert.False(t, ok)

	_, ok = ParseWeekday("Someday")
	assert.False(t, ok)
}

func TestWeekdayOf(t *testing.T) {
	// 2025-10-13 - понедельник
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Tuesday, WeekdayOf(monday.AddDate(0, 0, 1)))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
}

func TestMentorCanAcceptBookings(t *testing.T) {
	tests := []struct {
		isActive  bool
		available bool
		want      bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}

	for _, tt := range tests {
		m := Mentor{IsActive: tt.isActive, Available: tt.available}
		assert.Equal(t, tt.want, m.CanAcceptBookings(),
			"isActive=%t available=%t", tt.isActive, tt.available)
	}
}

func TestMentorPriceFor(t *testing.T) {
	m := Mentor{
		Pricing: []Pricing{
			{DurationMinutes: 15, Price: 299},
			{DurationMinutes: 30, Price: 499},
			{DurationMinutes: 60, Price: 799},
		},
	}

	price, ok := m.PriceFor(30)
	assert.True(t, ok)
	assert.Equal(t, 499.0, price)

	_, ok = m.PriceFor(45)
	assert.False(t, ok)
}

func TestMentorSlotByName(t *testing.T) {
	m := Mentor{
		TimeSlots: []TimeSlot{
			{Name: "Monday 17:00 - 21:00", Day: Monday},
			{Name: "Tuesday 21:00 - 01:00", Day: Tuesday},
		},
	}

	slot, ok := m.SlotByName("Tuesday 21:00 - 01:00")
	assert.True(t, ok)
	assert.Equal(t, Tuesday, slot.Day)

	_, ok = m.SlotByName("Friday 09:00 - 13:00")
	assert.False(t, ok)
}

func TestIsAllowedDuration(t *testing.T) {
	assert.True(t, IsAllowedDuration(15))
	assert.True(t, IsAllowedDuration(30))
	assert.True(t, IsAllowedDuration(60))
	assert.False(t, IsAllowedDuration(45))
	assert.False(t, IsAllowedDuration(0))
}
