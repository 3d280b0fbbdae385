package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	bookingRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/booking"
	mentorRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/mentor"
	"github.com/PraveenKumar22C/mentor-connect/internal/validation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMentorRepo struct {
	mentor *domain.Mentor
	err    error
}

func (f *fakeMentorRepo) GetByID(_ context.Context, _ int64) (*domain.Mentor, error) {
	return f.mentor, f.err
}

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error

	created *domain.Booking
}

func (f *fakeBookingRepo) GetForMentorDate(_ context.Context, _ int64, _ time.Time, _ []domain.BookingStatus) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 101
	booking.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func testMentor() *domain.Mentor {
	return &domain.Mentor{
		ID:             1,
		Name:           "Dr. Priya Sharma",
		Title:          "Senior Consultant - Internal Medicine",
		Specialization: "Internal Medicine",
		IsActive:       true,
		Available:      true,
		TimeSlots: []domain.TimeSlot{
			{Name: "Monday 09:00 - 13:00", Day: domain.Monday, StartTime: "09:00", EndTime: "13:00", Available: true},
		},
		Pricing: []domain.Pricing{
			{DurationMinutes: 30, Price: 699},
			{DurationMinutes: 60, Price: 1199},
		},
	}
}

func testRequest() *Request {
	return &Request{
		MentorID:     1,
		StudentName:  "Rohit Verma",
		StudentEmail: "rohit.verma@example.com",
		StudentPhone: "+91 98765 43210",
		SessionDate:  time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		TimeSlot: TimeSlot{
			Name:      "Monday 09:00 - 13:00",
			StartTime: "09:00",
			EndTime:   "13:00",
		},
		DurationMinutes: 30,
		Price:           699,
	}
}

func newUseCase(mentors *fakeMentorRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(bookings, mentors, fakeTxManager{}, validation.New(), nopLogger{})
}

func TestExecuteCreatesPendingBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newUseCase(&fakeMentorRepo{mentor: testMentor()}, bookings)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	assert.Equal(t, 699.0, resp.Price)
	assert.Equal(t, "Dr. Priya Sharma", resp.MentorName)
	assert.Equal(t, "Internal Medicine", resp.MentorSpecialization)

	// Снимок слота сохраняется как заявлен
	require.NotNil(t, bookings.created)
	assert.Equal(t, "Monday 09:00 - 13:00", bookings.created.TimeSlot.Name)
	assert.Equal(t, "09:00", bookings.created.TimeSlot.StartTime.String())
}

func TestExecuteMentorNotFound(t *testing.T) {
	uc := newUseCase(&fakeMentorRepo{err: mentorRepo.ErrMentorNotFound}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMentorNotFound)
}

func TestExecuteMentorNotAvailable(t *testing.T) {
	unavailable := testMentor()
	unavailable.Available = false
	uc := newUseCase(&fakeMentorRepo{mentor: unavailable}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMentorNotAvailable)

	deactivated := testMentor()
	deactivated.IsActive = false
	uc = newUseCase(&fakeMentorRepo{mentor: deactivated}, &fakeBookingRepo{})

	_, err = uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMentorNotAvailable)
}

func TestExecuteSlotAlreadyBooked(t *testing.T) {
	bookings := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				Status:   domain.StatusPending,
				TimeSlot: domain.TimeSlotSnapshot{Name: "Monday 09:00 - 13:00"},
			},
		},
	}
	uc := newUseCase(&fakeMentorRepo{mentor: testMentor()}, bookings)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Nil(t, bookings.created, "booking must not be created when slot is taken")
}

func TestExecuteConcurrentInsertLosesRace(t *testing.T) {
	// Проверка прошла, но уникальный индекс поймал конкурентную вставку
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newUseCase(&fakeMentorRepo{mentor: testMentor()}, bookings)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecutePriceMismatch(t *testing.T) {
	req := testRequest()
	req.Price = 499 // у ментора 30 минут стоят 699
	uc := newUseCase(&fakeMentorRepo{mentor: testMentor()}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPricing)
}

func TestExecuteDurationWithoutPricing(t *testing.T) {
	mentor := testMentor()
	mentor.Pricing = []domain.Pricing{{DurationMinutes: 60, Price: 1199}}

	req := testRequest()
	req.DurationMinutes = 30
	req.Price = 699

	uc := newUseCase(&fakeMentorRepo{mentor: mentor}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPricing)
}

func TestExecuteValidation(t *testing.T) {
	uc := newUseCase(&fakeMentorRepo{mentor: testMentor()}, &fakeBookingRepo{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero mentor id", func(r *Request) { r.MentorID = 0 }},
		{"short student name", func(r *Request) { r.StudentName = "A" }},
		{"invalid email", func(r *Request) { r.StudentEmail = "not-an-email" }},
		{"invalid phone", func(r *Request) { r.StudentPhone = "call me" }},
		{"missing session date", func(r *Request) { r.SessionDate = time.Time{} }},
		{"missing slot name", func(r *Request) { r.TimeSlot.Name = "" }},
		{"bad start time", func(r *Request) { r.TimeSlot.StartTime = "9am" }},
		{"disallowed duration", func(r *Request) { r.DurationMinutes = 45 }},
		{"negative price", func(r *Request) { r.Price = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
