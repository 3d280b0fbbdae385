package mentors

import (
	"context"
	"errors"
	"fmt"

	mentorRepo "github.com/PraveenKumar22C/mentor-connect/internal/infra/storage/mentor"
	"github.com/PraveenKumar22C/mentor-connect/internal/service/mentors/models"
)

// Service сервис каталога менторов
type Service struct {
	mentorRepo MentorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса менторов
func NewService(mentorRepo MentorRepository, logger Logger) *Service {
	return &Service{
		mentorRepo: mentorRepo,
		logger:     logger,
	}
}

// List получает каталог менторов с фильтрацией, сортировкой и пагинацией
func (s *Service) List(ctx context.Context, req *models.ListMentorsRequest) (*models.MentorListResponse, error) {
	s.logger.Info("List: fetching mentors (page=%d, limit=%d)", req.Page, req.Limit)

	filter := req.ToDomainFilter()

	mentors, total, err := s.mentorRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d of %d mentors", len(mentors), total)
	return &models.MentorListResponse{
		Mentors:    models.FromDomainMentorList(mentors),
		Pagination: models.NewPagination(total, filter.Page, filter.Limit, len(mentors)),
	}, nil
}

// GetByID получает ментора по ID
// Деактивированный ментор для вызывающей стороны неотличим от отсутствующего
func (s *Service) GetByID(ctx context.Context, id int64) (*models.MentorResponse, error) {
	s.logger.Info("GetByID: fetching mentor id=%d", id)

	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mentorRepo.ErrMentorNotFound) {
			s.logger.Warn("GetByID: mentor id=%d not found", id)
			return nil, ErrMentorNotFound
		}
		s.logger.Error("GetByID: repository error for mentor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !mentor.IsActive {
		s.logger.Warn("GetByID: mentor id=%d is deactivated", id)
		return nil, ErrMentorNotFound
	}

	s.logger.Info("GetByID: successfully fetched mentor id=%d", id)
	return models.FromDomainMentor(mentor), nil
}

// FilterOptions возвращает доступные значения фильтров каталога
func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptionsResponse, error) {
	s.logger.Info("FilterOptions: fetching filter options")

	specializations, locations, err := s.mentorRepo.FilterOptions(ctx)
	if err != nil {
		s.logger.Error("FilterOptions: repository error: %v", err)
		return nil, fmt.Errorf("%w: FilterOptions - repository error: %v", ErrInternal, err)
	}

	return &models.FilterOptionsResponse{
		Specializations:  specializations,
		Locations:        locations,
		ExperienceRanges: models.ExperienceRanges(),
	}, nil
}
