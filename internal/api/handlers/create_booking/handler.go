package create_booking

import (
	"errors"
	"net/http"

	"github.com/PraveenKumar22C/mentor-connect/internal/api/handlers"
	createBooking "github.com/PraveenKumar22C/mentor-connect/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты сессии, ожидается YYYY-MM-DD"
	msgMentorNotFound     = "ментор не найден"
	msgMentorNotAvailable = "ментор не принимает новые бронирования"
	msgSlotAlreadyBooked  = "выбранный временной слот уже занят"
	msgInvalidPricing     = "некорректная цена для выбранной длительности"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMentorNotFound):
			h.logger.Warn("POST /bookings - Mentor not found: mentor_id=%d", req.MentorID)
			handlers.RespondNotFound(w, msgMentorNotFound)

		case errors.Is(err, createBooking.ErrMentorNotAvailable):
			h.logger.Warn("POST /bookings - Mentor not available: mentor_id=%d", req.MentorID)
			handlers.RespondBadRequest(w, msgMentorNotAvailable)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: mentor_id=%d, date=%s, slot=%q",
				req.MentorID, req.SessionDate, req.TimeSlot.Name)
			handlers.RespondBadRequest(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrInvalidPricing):
			h.logger.Warn("POST /bookings - Invalid pricing: mentor_id=%d, duration=%d, price=%.2f",
				req.MentorID, req.DurationMinutes, req.Price)
			handlers.RespondBadRequest(w, msgInvalidPricing)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: mentor_id=%d, error=%v", req.MentorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, mentor_id=%d",
		result.ID, result.MentorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
