package get_mentor

import (
	"context"

	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors/models"
)

type MentorService interface {
	GetByID(ctx context.Context, id int64) (*models.MentorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
