package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/api/handlers"
	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	getAvailableSlots "github.com/PraveenKumar22C/mentor-connect/internal/usecase/get_available_slots"
)

const (
	msgInvalidMentorID = "некорректный идентификатор ментора"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMentorNotFound  = "ментор не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/available-slots?mentorId={id}&date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mentorID, err := strconv.ParseInt(query.Get("mentorId"), 10, 64)
	if err != nil || mentorID <= 0 {
		h.logger.Warn("GET /bookings/available-slots - Invalid mentorId: %q", query.Get("mentorId"))
		handlers.RespondBadRequest(w, msgInvalidMentorID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots - Invalid date: %q", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		MentorID: mentorID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrMentorNotFound):
			h.logger.Warn("GET /bookings/available-slots - Mentor not found: mentor_id=%d", mentorID)
			handlers.RespondNotFound(w, msgMentorNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings/available-slots - Failed: mentor_id=%d, error=%v", mentorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/available-slots - Found %d slots for mentor_id=%d, date=%s",
		len(result.Slots), mentorID, query.Get("date"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
