package get_mentor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PraveenKumar22C/mentor-connect/internal/api/handlers"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors"
)

const (
	msgInvalidMentorID = "некорректный идентификатор ментора"
	msgNotFound        = "ментор не найден"
)

type Handler struct {
	service MentorService
	logger  Logger
}

func NewHandler(service MentorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/mentors/{mentorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mentorID, err := strconv.ParseInt(vars["mentorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /mentors/{id} - Invalid mentor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMentorID)
		return
	}

	mentor, err := h.service.GetByID(r.Context(), mentorID)
	if err != nil {
		switch {
		case errors.Is(err, mentors.ErrMentorNotFound):
			h.logger.Warn("GET /mentors/{id} - Mentor not found: mentor_id=%d", mentorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /mentors/{id} - Failed to get mentor: mentor_id=%d, error=%v", mentorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /mentors/{id} - Mentor retrieved successfully: mentor_id=%d", mentorID)
	handlers.RespondJSON(w, http.StatusOK, mentor)
}
