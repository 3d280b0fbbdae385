package get_mentors

import (
	"context"

	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors/models"
)

type MentorService interface {
	List(ctx context.Context, req *models.ListMentorsRequest) (*models.MentorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
