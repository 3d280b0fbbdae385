package get_filter_options

import (
	"context"

	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors/models"
)

type MentorService interface {
	FilterOptions(ctx context.Context) (*models.FilterOptionsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
