package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/PraveenKumar22C/mentor-connect/internal/usecase/get_available_slots"
	"github.com/PraveenKumar22C/mentor-connect/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func ts(s string) types.TimeString {
	v, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestHandleReturnsSlotArray(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			MentorID: 1,
			Date:     time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			Slots: []getAvailableSlots.Slot{
				{Name: "Monday 09:00 - 13:00", Day: "Monday", StartTime: ts("09:00"), EndTime: ts("13:00")},
				{Name: "Monday 14:00 - 18:00", Day: "Monday", StartTime: ts("14:00"), EndTime: ts("18:00")},
			},
		},
	}
	rec := get(NewHandler(uc, nopLogger{}), "/api/v1/bookings/available-slots?mentorId=1&date=2025-10-13")

	require.Equal(t, http.StatusOK, rec.Code)

	// data - массив слотов без обёртки
	var body struct {
		Success bool           `json:"success"`
		Data    []SlotResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Monday 09:00 - 13:00", body.Data[0].Name)
	assert.Equal(t, "09:00", body.Data[0].StartTime)
	assert.Equal(t, "14:00", body.Data[1].StartTime)
}

func TestHandleEmptySlots(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			MentorID: 1,
			Date:     time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
	}
	rec := get(NewHandler(uc, nopLogger{}), "/api/v1/bookings/available-slots?mentorId=1&date=2025-10-13")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "data": []}`, rec.Body.String())
}

func TestHandleInvalidParams(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := get(h, "/api/v1/bookings/available-slots?mentorId=abc&date=2025-10-13")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(h, "/api/v1/bookings/available-slots?mentorId=1&date=13-10-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMentorNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrMentorNotFound}
	rec := get(NewHandler(uc, nopLogger{}), "/api/v1/bookings/available-slots?mentorId=7&date=2025-10-13")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Message)
}
