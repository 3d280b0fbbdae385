package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	mentorRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/mentor"
)

// UseCase use case получения доступных слотов ментора на дату
type UseCase struct {
	mentorRepo  MentorRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	mentorRepo MentorRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		mentorRepo:  mentorRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Операция только читает данные, состояние не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: mentor=%d, date=%s", req.MentorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ментора с шаблонами слотов
	mentor, err := uc.mentorRepo.GetByID(ctx, req.MentorID)
	if err != nil {
		if errors.Is(err, mentorRepo.ErrMentorNotFound) {
			uc.logger.Warn("GetAvailableSlots: mentor id=%d not found", req.MentorID)
			return nil, ErrMentorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get mentor id=%d: %v", req.MentorID, err)
		return nil, fmt.Errorf("%w: failed to get mentor: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования ментора на эту дату
	bookings, err := uc.bookingRepo.GetForMentorDate(ctx, req.MentorID, req.Date, domain.ActiveStatuses)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Фильтруем шаблоны: выключенные и занятые по имени не возвращаются
	slots := resolveAvailableSlots(mentor.TimeSlots, bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d templates available for mentor=%d, date=%s",
		len(slots), len(mentor.TimeSlots), req.MentorID, req.Date.Format(domain.DateFormat))

	return &Response{
		MentorID: req.MentorID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MentorID <= 0 {
		return fmt.Errorf("%w: mentorID must be positive", ErrInvalidInput)
	}

	// Дата обязательна
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
