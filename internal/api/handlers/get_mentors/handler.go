package get_mentors

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/PraveenKumar22C/mentor-connect/internal/api/handlers"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors/models"
)

const (
	msgInvalidExperience = "некорректное значение минимального опыта"
	msgInvalidFilter     = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/mentors
// Фильтры: specialization, location (CSV), minExperience, available, search;
// сортировка: sortBy, sortOrder; пагинация: page, limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListMentorsRequest{
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	if raw := query.Get("specialization"); raw != "" {
		req.Specializations = splitCSV(raw)
	}
	if raw := query.Get("location"); raw != "" {
		req.Locations = splitCSV(raw)
	}

	if raw := query.Get("minExperience"); raw != "" {
		minExperience, err := strconv.Atoi(raw)
		if err != nil || minExperience < 0 {
			h.logger.Warn("GET /mentors - Invalid minExperience: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidExperience)
			return
		}
		req.MinExperience = &minExperience
	}

	if raw := query.Get("available"); raw != "" {
		available := raw == "true"
		req.Available = &available
	}

	if raw := query.Get("search"); raw != "" {
		req.Search = &raw
	}

	req.Page, _ = strconv.Atoi(query.Get("page"))
	req.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, mentors.ErrInvalidInput):
			h.logger.Warn("GET /mentors - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /mentors - Failed to list mentors: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /mentors - Retrieved %d mentors (total=%d)",
		len(result.Mentors), result.Pagination.TotalCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// splitCSV разбирает список значений через запятую, отбрасывая пустые
func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
