package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/PraveenKumar22C/mentor-connect/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

const validBody = `{
	"mentorId": 1,
	"studentName": "Rohit Verma",
	"studentEmail": "rohit.verma@example.com",
	"studentPhone": "+91 98765 43210",
	"sessionDate": "2025-10-13",
	"timeSlot": {"name": "Monday 09:00 - 13:00", "startTime": "09:00", "endTime": "13:00"},
	"duration": 30,
	"price": 699
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	h.Handle(rec, req)
	return rec
}

func TestHandleCreatesBooking(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:          101,
			MentorID:    1,
			SessionDate: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			Status:      "pending",
			MentorName:  "Dr. Priya Sharma",
		},
	}
	rec := post(NewHandler(uc, nopLogger{}), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(101), body.Data.ID)
	assert.Equal(t, "pending", body.Data.Status)
	assert.Equal(t, "2025-10-13", body.Data.SessionDate)
	assert.Equal(t, "Dr. Priya Sharma", body.Data.Mentor.Name)

	// Дата и время распарсены в модель use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "09:00", uc.gotReq.TimeSlot.StartTime.String())
	assert.Equal(t, 30, uc.gotReq.DurationMinutes)

	// Длительность в ответе сериализуется как "duration"
	var raw struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw.Data, "duration")
	assert.NotContains(t, raw.Data, "durationMinutes")
}

func TestHandleInvalidBody(t *testing.T) {
	rec := post(NewHandler(&fakeUseCase{}, nopLogger{}), `{"mentorId": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidDate(t *testing.T) {
	body := strings.Replace(validBody, "2025-10-13", "13/10/2025", 1)
	rec := post(NewHandler(&fakeUseCase{}, nopLogger{}), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"mentor not found", createBooking.ErrMentorNotFound, http.StatusNotFound},
		{"mentor not available", createBooking.ErrMentorNotAvailable, http.StatusBadRequest},
		{"slot already booked", createBooking.ErrSlotAlreadyBooked, http.StatusBadRequest},
		{"invalid pricing", createBooking.ErrInvalidPricing, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}
