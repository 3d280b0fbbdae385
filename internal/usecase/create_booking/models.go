package create_booking

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	"github.com/PraveenKumar22C/mentor-connect/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	MentorID int64

	StudentName  string
	StudentEmail string
	StudentPhone string

	SessionDate time.Time // Календарная дата сессии (без времени)
	TimeSlot    TimeSlot  // Выбранный шаблон слота (имя + снимок времени)

	DurationMinutes int
	Price           float64 // Цена, заявленная клиентом; сверяется с прайсингом ментора

	Notes *string
}

// TimeSlot выбранный слот в запросе
type TimeSlot struct {
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response модель ответа с созданным бронированием
// Дополнена публичными полями ментора для удобства вызывающей стороны
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

	Notes *string

	// Публичные поля ментора (display snapshot для вызывающей стороны)
	MentorName           string
	MentorTitle          string
	MentorSpecialization string
	MentorProfileImage   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
