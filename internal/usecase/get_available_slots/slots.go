package get_available_slots

import (
	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// resolveAvailableSlots вычисляет доступные шаблоны слотов:
// остаются шаблоны с available = true, чьё имя не занято активным
// бронированием на эту дату. Порядок объявления шаблонов сохраняется.
//
// Сопоставление - по равенству имени шаблона, не по пересечению
// временных интервалов: два разноимённых шаблона с пересекающимися
// интервалами считаются независимыми и могут быть забронированы оба.
// Это свойство дизайна каталога, а не недочёт
func resolveAvailableSlots(templates []domain.TimeSlot, bookings []*domain.Booking) []Slot {
	bookedNames := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			bookedNames[b.TimeSlot.Name] = true
		}
	}

	slots := make([]Slot, 0, len(templates))
	for _, tmpl := range templates {
		if !tmpl.Available {
			continue
		}
		if bookedNames[tmpl.Name] {
			continue
		}
		slots = append(slots, Slot{
			Name:      tmpl.Name,
			Day:       string(tmpl.Day),
			StartTime: tmpl.StartTime,
			EndTime:   tmpl.EndTime,
		})
	}

	return slots
}
