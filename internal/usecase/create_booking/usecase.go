package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	bookingRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/booking"
	mentorRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/mentor"
)

// UseCase use case создания бронирования (admission)
// Конвейер проверок: ментор принимает бронирования -> слот свободен ->
// цена совпадает с прайсингом. Первая провалившаяся проверка прерывает конвейер,
// состояние при отказе не меняется
type UseCase struct {
	bookingRepo BookingRepository
	mentorRepo  MentorRepository
	txManager   TransactionManager
	validator   Validator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	mentorRepo MentorRepository,
	txManager TransactionManager,
	validator Validator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		mentorRepo:  mentorRepo,
		txManager:   txManager,
		validator:   validator,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки и вставка выполняются в одной сериализуемой транзакции
// с блокировкой бронирований дня (FOR UPDATE); частичный уникальный индекс
// активных бронирований в БД - страховка от гонки двух одновременных запросов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: mentor=%d, date=%s, slot=%q, duration=%d",
		req.MentorID, req.SessionDate.Format(domain.DateFormat), req.TimeSlot.Name, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var mentor *domain.Mentor

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Ментор должен существовать, быть активным и принимать бронирования
		var err error
		mentor, err = uc.mentorRepo.GetByID(txCtx, req.MentorID)
		if err != nil {
			if errors.Is(err, mentorRepo.ErrMentorNotFound) {
				uc.logger.Warn("CreateBooking: mentor id=%d not found", req.MentorID)
				return ErrMentorNotFound
			}
			uc.logger.Error("CreateBooking: failed to get mentor id=%d: %v", req.MentorID, err)
			return fmt.Errorf("%w: failed to get mentor: %v", ErrInternal, err)
		}

		if !mentor.CanAcceptBookings() {
			uc.logger.Warn("CreateBooking: mentor id=%d is not accepting bookings (available=%t, isActive=%t)",
				mentor.ID, mentor.Available, mentor.IsActive)
			return ErrMentorNotAvailable
		}

		// 3. На ключ (ментор, дата, имя слота) допустимо не более одного
		// активного бронирования. Читаем бронирования дня с блокировкой
		bookings, err := uc.bookingRepo.GetForMentorDate(txCtx, req.MentorID, req.SessionDate, domain.ActiveStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if slotNameTaken(bookings, req.TimeSlot.Name) {
			uc.logger.Warn("CreateBooking: slot %q already booked for mentor=%d, date=%s",
				req.TimeSlot.Name, req.MentorID, req.SessionDate.Format(domain.DateFormat))
			return ErrSlotAlreadyBooked
		}

		// 4. Цена клиента должна точно совпадать с прайсингом ментора
		// (защита от устаревшей или подменённой клиентской котировки)
		price, ok := mentor.PriceFor(req.DurationMinutes)
		if !ok {
			uc.logger.Warn("CreateBooking: mentor id=%d has no pricing for duration=%d", mentor.ID, req.DurationMinutes)
			return ErrInvalidPricing
		}
		if price != req.Price {
			uc.logger.Warn("CreateBooking: price mismatch for mentor=%d duration=%d: expected %.2f, got %.2f",
				mentor.ID, req.DurationMinutes, price, req.Price)
			return ErrInvalidPricing
		}

		// 5. Создаем бронирование со снимком слота и цены как они заявлены
		booking := &domain.Booking{
			MentorID:     req.MentorID,
			StudentName:  req.StudentName,
			StudentEmail: req.StudentEmail,
			StudentPhone: req.StudentPhone,
			SessionDate:  req.SessionDate,
			TimeSlot: domain.TimeSlotSnapshot{
				Name:      req.TimeSlot.Name,
				StartTime: req.TimeSlot.StartTime,
				EndTime:   req.TimeSlot.EndTime,
			},
			DurationMinutes: req.DurationMinutes,
			Price:           req.Price,
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentPending,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс сработал - конкурентный запрос успел раньше
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: concurrent booking won the slot %q for mentor=%d, date=%s",
					req.TimeSlot.Name, req.MentorID, req.SessionDate.Format(domain.DateFormat))
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (mentor=%d, slot=%q)",
		result.ID, result.MentorID, result.TimeSlot.Name)

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
		Notes:           result.Notes,

		MentorName:           mentor.Name,
		MentorTitle:          mentor.Title,
		MentorSpecialization: mentor.Specialization,
		MentorProfileImage:   mentor.ProfileImage,

		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
