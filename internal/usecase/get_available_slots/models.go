package get_available_slots

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	MentorID int64     // ID ментора
	Date     time.Time // Календарная дата (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MentorID int64     // ID ментора
	Date     time.Time // Дата, на которую запрашивались слоты
	Slots    []Slot    // Доступные шаблоны в порядке объявления ментором
}

// Slot шаблон слота, доступный для бронирования
type Slot struct {
	Name      string           // Стабильное имя шаблона (ключ бронирования)
	Day       string           // День недели шаблона
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
}
