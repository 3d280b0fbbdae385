package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	bookingRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/booking"
	mentorRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/mentor"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Запись идет через usecase-слой; здесь только выборки и обогащение
// данными ментора для вызывающей стороны
type Service struct {
	bookingRepo BookingRepository
	mentorRepo  MentorRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	mentorRepo MentorRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		mentorRepo:  mentorRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с публичными данными ментора
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	mentor := s.lookupMentor(ctx, booking.MentorID)

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, mentor), nil
}

// List получает список бронирований с фильтрацией и пагинацией
// Поддерживает фильтры по ментору, email студента, статусу и дате сессии
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings (page=%d, limit=%d)", req.Page, req.Limit)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Менторы страницы загружаются по одному разу на уникальный ID
	mentors := make(map[int64]*domain.Mentor)
	for _, b := range bookings {
		if _, ok := mentors[b.MentorID]; !ok {
			mentors[b.MentorID] = s.lookupMentor(ctx, b.MentorID)
		}
	}

	items := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *models.FromDomainBooking(b, mentors[b.MentorID]))
	}

	s.logger.Info("List: successfully fetched %d of %d bookings", len(items), total)
	return &models.BookingListResponse{
		Bookings:   items,
		Pagination: models.NewPagination(total, filter.Page, filter.Limit, len(items)),
	}, nil
}

// lookupMentor возвращает ментора или nil, если тот не найден
// Отсутствие ментора не фатально для выборки бронирований
func (s *Service) lookupMentor(ctx context.Context, mentorID int64) *domain.Mentor {
	mentor, err := s.mentorRepo.GetByID(ctx, mentorID)
	if err != nil {
		if !errors.Is(err, mentorRepo.ErrMentorNotFound) {
			s.logger.Warn("lookupMentor: failed to get mentor id=%d: %v", mentorID, err)
		}
		return nil
	}
	return mentor
}
