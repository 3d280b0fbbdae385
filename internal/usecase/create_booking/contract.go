package create_booking

import (
	"context"
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// MentorRepository интерфейс каталога менторов (только чтение)
type MentorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Mentor, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetForMentorDate(ctx context.Context, mentorID int64, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Validator интерфейс структурной валидации (контактные данные студента)
type Validator interface {
	Struct(s interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
