package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinStudentNameLength  = 2
	MaxStudentNameLength  = 100
	MaxNotesLength        = 500
	MaxCancelReasonLength = 500
)

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// AllowedDurations допустимые длительности сессии в минутах
var AllowedDurations = []int{15, 30, 60}

// IsAllowedDuration проверяет, что длительность входит в допустимый набор
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// ActiveStatuses статусы, при которых бронирование занимает свой слот
// Используется при вычислении доступных слотов и проверке двойного бронирования
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
