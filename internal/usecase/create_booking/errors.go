package create_booking

import "errors"

var (
	// ErrMentorNotFound возвращается, когда ментор не найден
	ErrMentorNotFound = errors.New("create_booking: mentor not found")

	// ErrMentorNotAvailable возвращается, когда ментор не принимает новые бронирования
	ErrMentorNotAvailable = errors.New("create_booking: mentor is not available for booking")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят активным бронированием
	// на ту же дату и то же имя шаблона
	ErrSlotAlreadyBooked = errors.New("create_booking: time slot is already booked")

	// ErrInvalidPricing возвращается, когда заявленная клиентом цена не совпадает
	// с прайсингом ментора для выбранной длительности
	ErrInvalidPricing = errors.New("create_booking: invalid pricing information")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
