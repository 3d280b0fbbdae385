package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	bookingRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/booking"
	"github.com/PraveenKumar22C/mentor-connect/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeBookingRepo хранит одно бронирование и применяет изменения в памяти
type fakeBookingRepo struct {
	booking *domain.Booking

	updateCalls int
	cancelCalls int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus, meetingLink *string) error {
	f.updateCalls++
	f.booking.Status = status
	if meetingLink != nil {
		f.booking.MeetingLink = meetingLink
	}
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason *string) error {
	f.cancelCalls++
	f.booking.Status = domain.StatusCancelled
	f.booking.CancelReason = reason
	now := time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)
	f.booking.CancelledAt = &now
	return nil
}

type fakeMentorRepo struct {
	incremented []int64
}

func (f *fakeMentorRepo) IncrementTotalSessions(_ context.Context, id int64) error {
	f.incremented = append(f.incremented, id)
	return nil
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:       101,
		MentorID: 1,
		Status:   domain.StatusPending,
		TimeSlot: domain.TimeSlotSnapshot{Name: "Monday 09:00 - 13:00", StartTime: "09:00", EndTime: "13:00"},
	}
}

func newUseCase(bookings *fakeBookingRepo, mentors *fakeMentorRepo) *UseCase {
	return NewUseCase(bookings, mentors, fakeTxManager{}, nopLogger{})
}

func TestExecuteConfirmWithMeetingLink(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	uc := newUseCase(bookings, &fakeMentorRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   101,
		Status:      "confirmed",
		MeetingLink: ptr.Ptr("https://meet.example.com/abc"),
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.MeetingLink)
	assert.Equal(t, "https://meet.example.com/abc", *resp.MeetingLink)
}

func TestExecuteCompleteIncrementsSessionsOnce(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	bookings := &fakeBookingRepo{booking: booking}
	mentors := &fakeMentorRepo{}
	uc := newUseCase(bookings, mentors)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 101, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []int64{1}, mentors.incremented)

	// Повторный completed отклоняется, счетчик не растет
	_, err = uc.Execute(context.Background(), &Request{BookingID: 101, Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, mentors.incremented, 1)
}

func TestExecutePendingCanBeCompletedDirectly(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	mentors := &fakeMentorRepo{}
	uc := newUseCase(bookings, mentors)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 101, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []int64{1}, mentors.incremented)
}

func TestExecuteCancelStampsReasonAndTime(t *testing.T) {
	bookings := &fakeBookingRepo{booking: pendingBooking()}
	uc := newUseCase(bookings, &fakeMentorRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:    101,
		Status:       "cancelled",
		CancelReason: ptr.Ptr("student is unavailable"),
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancelReason)
	assert.Equal(t, "student is unavailable", *resp.CancelReason)
	assert.NotNil(t, resp.CancelledAt)
	assert.Equal(t, 1, bookings.cancelCalls)
}

func TestExecuteTerminalStatusesAreStable(t *testing.T) {
	for _, terminal := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		booking := pendingBooking()
		booking.Status = terminal
		bookings := &fakeBookingRepo{booking: booking}
		uc := newUseCase(bookings, &fakeMentorRepo{})

		for _, target := range []string{"pending", "confirmed", "completed", "cancelled"} {
			_, err := uc.Execute(context.Background(), &Request{BookingID: 101, Status: target})
			assert.ErrorIs(t, err, ErrInvalidTransition, "from %s to %s", terminal, target)
		}

		assert.Zero(t, bookings.updateCalls)
		assert.Zero(t, bookings.cancelCalls)
	}
}

func TestExecuteConfirmedCannotReturnToPending(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	uc := newUseCase(&fakeBookingRepo{booking: booking}, &fakeMentorRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 101, Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecuteBookingNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeMentorRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 404, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{booking: pendingBooking()}, &fakeMentorRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 101, Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
