package mentors

import (
	"context"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// MentorRepository интерфейс каталога менторов
type MentorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Mentor, error)
	List(ctx context.Context, filter domain.MentorsFilter) ([]*domain.Mentor, int64, error)
	FilterOptions(ctx context.Context) (specializations []string, locations []string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
