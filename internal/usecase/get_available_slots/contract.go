package get_available_slots

import (
	"context"
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// MentorRepository интерфейс каталога менторов
type MentorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Mentor, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetForMentorDate получает бронирования ментора на конкретную дату с фильтром по статусам
	GetForMentorDate(ctx context.Context, mentorID int64, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
