package get_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PraveenKumar22C/mentor-connect/internal/api/handlers"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/bookings"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/bookings/models"
)

const (
	msgInvalidMentorID = "некорректный идентификатор ментора"
	msgInvalidFilter   = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?mentorId=&studentEmail=&status=&sessionDate=&page=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}

	if raw := query.Get("mentorId"); raw != "" {
		mentorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || mentorID <= 0 {
			h.logger.Warn("GET /bookings - Invalid mentorId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMentorID)
			return
		}
		req.MentorID = &mentorID
	}

	if raw := query.Get("studentEmail"); raw != "" {
		req.StudentEmail = &raw
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("sessionDate"); raw != "" {
		req.SessionDate = &raw
	}

	// Некорректные page/limit молча заменяются значениями по умолчанию
	req.Page, _ = strconv.Atoi(query.Get("page"))
	req.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings (total=%d)",
		len(result.Bookings), result.Pagination.TotalCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
