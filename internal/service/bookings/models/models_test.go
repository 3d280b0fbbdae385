package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	"github.com/PraveenKumar22C/mentor-connect/pkg/ptr"
)

func TestToDomainFilterNormalizesPagination(t *testing.T) {
	filter, err := (&ListBookingsRequest{}).ToDomainFilter()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPage, filter.Page)
	assert.Equal(t, domain.DefaultLimit, filter.Limit)

	filter, err = (&ListBookingsRequest{Page: 3, Limit: 500}).ToDomainFilter()
	require.NoError(t, err)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, domain.MaxLimit, filter.Limit)
}

func TestToDomainFilterParsesStatusAndDate(t *testing.T) {
	req := &ListBookingsRequest{
		Status:      ptr.Ptr("confirmed"),
		SessionDate: ptr.Ptr("2025-10-15"),
	}

	filter, err := req.ToDomainFilter()
	require.NoError(t, err)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusConfirmed, *filter.Status)
	require.NotNil(t, filter.SessionDate)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), *filter.SessionDate)
}

func TestToDomainFilterRejectsBadValues(t *testing.T) {
	_, err := (&ListBookingsRequest{Status: ptr.Ptr("done")}).ToDomainFilter()
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = (&ListBookingsRequest{SessionDate: ptr.Ptr("15/10/2025")}).ToDomainFilter()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewPagination(t *testing.T) {
	// Средняя страница: есть соседи с обеих сторон
	p := NewPagination(25, 2, 10, 10)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(25), p.TotalCount)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	// Первая страница из трёх
	p = NewPagination(30, 1, 10, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	// Последняя неполная страница
	p = NewPagination(25, 3, 10, 5)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)

	// Пустой список
	p = NewPagination(0, 1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestFromDomainBooking(t *testing.T) {
	cancelledAt := time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:          101,
		MentorID:    1,
		SessionDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:    domain.TimeSlotSnapshot{Name: "Monday 09:00 - 13:00", StartTime: "09:00", EndTime: "13:00"},
		Status:      domain.StatusCancelled,
		CancelledAt: &cancelledAt,
	}
	mentor := &domain.Mentor{ID: 1, Name: "Dr. Priya Sharma"}

	resp := FromDomainBooking(booking, mentor)
	assert.Equal(t, "2025-10-15", resp.SessionDate)
	assert.Equal(t, "09:00", resp.TimeSlot.StartTime)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "2025-10-14T09:00:00Z", *resp.CancelledAt)
	require.NotNil(t, resp.Mentor)
	assert.Equal(t, "Dr. Priya Sharma", resp.Mentor.Name)

	// Без ментора блок mentor опускается
	resp = FromDomainBooking(booking, nil)
	assert.Nil(t, resp.Mentor)
}
