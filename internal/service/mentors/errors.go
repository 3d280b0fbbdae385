package mentors

import "errors"

var (
	// ErrMentorNotFound возвращается, когда ментор не найден или деактивирован
	ErrMentorNotFound = errors.New("mentor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
