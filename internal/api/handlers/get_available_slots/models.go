package get_available_slots

import (
	getAvailableSlots "github.com/PraveenKumar22C/mentor-connect/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот в HTTP ответе
type SlotResponse struct {
	Name      string `json:"name"`
	Day       string `json:"day"`       // "Monday" ... "Sunday"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Клиент получает массив слотов напрямую в data
func FromUseCaseResponse(resp *getAvailableSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Name:      slot.Name,
			Day:       slot.Day,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}
	return slots
}
