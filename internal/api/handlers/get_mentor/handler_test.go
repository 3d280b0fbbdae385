package get_mentor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMentorService struct {
	mentor *models.MentorResponse
	err    error
}

func (f *fakeMentorService) GetByID(_ context.Context, _ int64) (*models.MentorResponse, error) {
	return f.mentor, f.err
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/mentors/{mentorId}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandleReturnsMentor(t *testing.T) {
	service := &fakeMentorService{
		mentor: &models.MentorResponse{ID: 1, Name: "Dr. Priya Sharma"},
	}
	router := newRouter(NewHandler(service, nopLogger{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mentors/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                  `json:"success"`
		Data    models.MentorResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Dr. Priya Sharma", body.Data.Name)
}

func TestHandleMentorNotFound(t *testing.T) {
	service := &fakeMentorService{err: mentors.ErrMentorNotFound}
	router := newRouter(NewHandler(service, nopLogger{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mentors/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Message)
}

func TestHandleInvalidMentorID(t *testing.T) {
	router := newRouter(NewHandler(&fakeMentorService{}, nopLogger{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/mentors/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
