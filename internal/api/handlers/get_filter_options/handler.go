package get_filter_options

import (
	"net/http"

	"github.com/PraveenKumar22C/mentor-connect/internal/api/handlers"
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

// Handle GET /api/v1/mentors/filters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.FilterOptions(r.Context())
	if err != nil {
		h.logger.Error("GET /mentors/filters - Failed to get filter options: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /mentors/filters - Retrieved %d specializations, %d locations",
		len(options.Specializations), len(options.Locations))
	handlers.RespondJSON(w, http.StatusOK, options)
}
