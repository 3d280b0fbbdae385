package create_booking

import (
	"fmt"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// contactFields контактные данные студента для структурной валидации
// Правило phone регистрируется в internal/validation
type contactFields struct {
	Name  string `validate:"required,min=2,max=100"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,phone"`
}

// validateRequest валидирует входные данные запроса
// Контактная тройка проверяется только по формату - никакой системы идентичности нет
func (uc *UseCase) validateRequest(req *Request) error {
	if req.MentorID <= 0 {
		return fmt.Errorf("%w: mentorID must be positive", ErrInvalidInput)
	}

	contact := contactFields{
		Name:  req.StudentName,
		Email: req.StudentEmail,
		Phone: req.StudentPhone,
	}
	if err := uc.validator.Struct(contact); err != nil {
		return fmt.Errorf("%w: invalid student contact fields: %v", ErrInvalidInput, err)
	}

	if req.SessionDate.IsZero() {
		return fmt.Errorf("%w: sessionDate is required", ErrInvalidInput)
	}

	if req.TimeSlot.Name == "" {
		return fmt.Errorf("%w: timeSlot.name is required", ErrInvalidInput)
	}
	if err := req.TimeSlot.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot.startTime: %v", ErrInvalidInput, err)
	}
	if err := req.TimeSlot.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot.endTime: %v", ErrInvalidInput, err)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration must be one of %v minutes", ErrInvalidInput, domain.AllowedDurations)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// slotNameTaken проверяет, занято ли имя шаблона активным бронированием
// Сопоставление только по имени шаблона; пересечение временных интервалов
// разноимённых шаблонов допустимо (свойство дизайна каталога)
func slotNameTaken(bookings []*domain.Booking, slotName string) bool {
	for _, b := range bookings {
		if b.IsActive() && b.TimeSlot.Name == slotName {
			return true
		}
	}
	return false
}
