package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	bookingRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования (lifecycle)
// Допустимые переходы: pending -> confirmed/completed/cancelled,
// confirmed -> completed/cancelled; completed и cancelled терминальны
type UseCase struct {
	bookingRepo BookingRepository
	mentorRepo  MentorRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	mentorRepo MentorRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		mentorRepo:  mentorRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case смены статуса
// Чтение текущего статуса и запись нового идут в одной сериализуемой транзакции
// с блокировкой строки, поэтому два конкурирующих completed не удвоят
// счетчик сессий ментора: второй увидит терминальный статус и получит отказ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%d, target=%q", req.BookingID, req.Status)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	target, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		uc.logger.Warn("UpdateBookingStatus: unknown status %q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.CancelReason != nil && len(*req.CancelReason) > domain.MaxCancelReasonLength {
		return nil, fmt.Errorf("%w: cancelReason must not exceed %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Читаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3. Проверяем допустимость перехода из текущего статуса
		if !booking.Status.CanTransitionTo(target) {
			uc.logger.Warn("UpdateBookingStatus: transition %q -> %q is not allowed for booking id=%d",
				booking.Status, target, booking.ID)
			return fmt.Errorf("%w: cannot change status from %q to %q", ErrInvalidTransition, booking.Status, target)
		}

		// 4. Применяем переход
		switch target {
		case domain.StatusCancelled:
			if err := uc.bookingRepo.Cancel(txCtx, booking.ID, req.CancelReason); err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to cancel booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
			}

		case domain.StatusCompleted:
			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target, nil); err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}
			// Счетчик сессий растет ровно один раз на бронирование:
			// повторный completed отсеивается проверкой перехода выше
			if err := uc.mentorRepo.IncrementTotalSessions(txCtx, booking.MentorID); err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to increment sessions for mentor id=%d: %v",
					booking.MentorID, err)
				return fmt.Errorf("%w: failed to increment mentor sessions: %v", ErrInternal, err)
			}

		default:
			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target, req.MeetingLink); err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}
		}

		// 5. Перечитываем актуальное состояние для ответа
		updated, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to reload booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d is now %q", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		MentorID:        result.MentorID,
		StudentName:     result.StudentName,
		StudentEmail:    result.StudentEmail,
		StudentPhone:    result.StudentPhone,
		SessionDate:     result.SessionDate,
		TimeSlot:        result.TimeSlot,
		DurationMinutes: result.DurationMinutes,
		Price:           result.Price,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		MeetingLink:     result.MeetingLink,
		Notes:           result.Notes,
		CancelledAt:     result.CancelledAt,
		CancelReason:    result.CancelReason,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
