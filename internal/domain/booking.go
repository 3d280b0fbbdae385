package domain

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment status of a booking
// Хранится и отдаётся наружу, но логикой сервиса не управляется
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// TimeSlotSnapshot копия слота ментора, снятая в момент создания бронирования
// Дальнейшие изменения расписания ментора не влияют на существующие бронирования
type TimeSlotSnapshot struct {
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Booking represents a mentoring session booking
type Booking struct {
	ID       int64
	MentorID int64

	StudentName  string
	StudentEmail string
	StudentPhone string

	SessionDate     time.Time // Календарная дата сессии (время суток игнорируется)
	TimeSlot        TimeSlotSnapshot
	DurationMinutes int
	Price           float64 // Snapshot цены ментора на момент бронирования

	Status        BookingStatus
	PaymentStatus PaymentStatus

	MeetingLink *string
	Notes       *string

	CancelledAt  *time.Time
	CancelReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot (pending или confirmed)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking reached a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true for completed and cancelled
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo проверяет допустимость перехода статуса
// Диаграмма: pending -> confirmed -> completed, из pending/confirmed -> cancelled
// Переход pending -> completed разрешён (подтверждение может быть пропущено)
// Из терминальных статусов переходов нет
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCompleted || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// ParsePaymentStatus конвертирует строку в PaymentStatus с валидацией
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return PaymentStatus(s), true
	default:
		return "", false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	MentorID     *int64         // Фильтр по ментору (опционально)
	StudentEmail *string        // Фильтр по email студента (опционально)
	Status       *BookingStatus // Фильтр по статусу (опционально)
	SessionDate  *time.Time     // Фильтр по календарной дате сессии (опционально)
	Page         int
	Limit        int
}
