package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBookingIsActive(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed} {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s", status)
		assert.True(t, b.CanBeCancelled(), "status %s", status)
	}

	for _, status := range []BookingStatus{StatusCompleted, StatusCancelled} {
		b := Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s", status)
		assert.False(t, b.CanBeCancelled(), "status %s", status)
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseBookingStatus("unknown")
	assert.False(t, ok)

	// Регистр значим
	_, ok = ParseBookingStatus("Pending")
	assert.False(t, ok)
}

func TestParsePaymentStatus(t *testing.T) {
	status, ok := ParsePaymentStatus("paid")
	assert.True(t, ok)
	assert.Equal(t, PaymentPaid, status)

	_, ok = ParsePaymentStatus("refunded")
	assert.False(t, ok)
}
