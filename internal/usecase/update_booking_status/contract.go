package update_booking_status

import (
	"context"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, meetingLink *string) error
	Cancel(ctx context.Context, id int64, reason *string) error
}

// MentorRepository интерфейс для обновления счетчика сессий ментора
type MentorRepository interface {
	IncrementTotalSessions(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
