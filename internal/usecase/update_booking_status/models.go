package update_booking_status

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID int64

	Status string // Целевой статус (confirmed / completed / cancelled)

	MeetingLink  *string // Ссылка на встречу; учитывается при переходе в confirmed
	CancelReason *string // Причина отмены; учитывается при переходе в cancelled
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID       int64
	MentorID int64

	StudentName  string
	StudentEmail string
	StudentPhone string

	SessionDate     time.Time
	TimeSlot        domain.TimeSlotSnapshot
	DurationMinutes int
	Price           float64

	Status        string
	PaymentStatus string

	MeetingLink  *string
	Notes        *string
	CancelledAt  *time.Time
	CancelReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
