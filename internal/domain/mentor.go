package domain

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/pkg/types"
)

// Weekday день недели слота
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// ParseWeekday конвертирует строку в Weekday с валидацией
func ParseWeekday(s string) (Weekday, bool) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(s), true
	default:
		return "", false
	}
}

// WeekdayOf возвращает день недели для календарной даты
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// TimeSlot еженедельный именованный шаблон доступности ментора
// Available - ручной переключатель шаблона, не зависит от бронирований
type TimeSlot struct {
	Name      string
	Day       Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Pricing цена сессии за длительность; длительность уникальна в рамках ментора
type Pricing struct {
	DurationMinutes int
	Price           float64
}

// Mentor карточка ментора в каталоге
type Mentor struct {
	ID             int64
	Name           string
	Title          string
	Specialization string
	Experience     int // Опыт в годах
	Location       string
	ProfileImage   string
	Bio            string
	Languages      []string

	Available bool // Глобальный флаг приёма новых бронирований
	IsActive  bool // Soft-delete флаг

	TimeSlots []TimeSlot // Порядок объявления сохраняется
	Pricing   []Pricing

	Rating        float64
	TotalSessions int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanAcceptBookings returns true if the mentor accepts new bookings
func (m *Mentor) CanAcceptBookings() bool {
	return m.IsActive && m.Available
}

// PriceFor возвращает цену для указанной длительности
func (m *Mentor) PriceFor(durationMinutes int) (float64, bool) {
	for _, p := range m.Pricing {
		if p.DurationMinutes == durationMinutes {
			return p.Price, true
		}
	}
	return 0, false
}

// SlotByName возвращает шаблон слота по имени
func (m *Mentor) SlotByName(name string) (TimeSlot, bool) {
	for _, slot := range m.TimeSlots {
		if slot.Name == name {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// MentorsFilter фильтр для выборки менторов
type MentorsFilter struct {
	Specializations []string // Частичное совпадение, без учёта регистра
	Locations       []string // Частичное совпадение, без учёта регистра
	MinExperience   *int
	Available       *bool
	Search          *string // Поиск по имени/специализации/локации/должности

	SortBy    string // rating | experience | name | totalSessions
	SortOrder string // asc | desc

	Page  int
	Limit int
}
