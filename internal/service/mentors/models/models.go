package models

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

// Request модели

// ListMentorsRequest запрос на получение каталога менторов
type ListMentorsRequest struct {
	Specializations []string `json:"specializations,omitempty"`
	Locations       []string `json:"locations,omitempty"`
	MinExperience   *int     `json:"minExperience,omitempty"`
	Available       *bool    `json:"available,omitempty"`
	Search          *string  `json:"search,omitempty"`

	SortBy    string `json:"sortBy,omitempty"`    // rating | experience | name | totalSessions
	SortOrder string `json:"sortOrder,omitempty"` // asc | desc

	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
// Нормализует page/limit к допустимым значениям
func (r *ListMentorsRequest) ToDomainFilter() domain.MentorsFilter {
	filter := domain.MentorsFilter{
		Specializations: r.Specializations,
		Locations:       r.Locations,
		MinExperience:   r.MinExperience,
		Available:       r.Available,
		Search:          r.Search,
		SortBy:          r.SortBy,
		SortOrder:       r.SortOrder,
		Page:            r.Page,
		Limit:           r.Limit,
	}

	if filter.Page < 1 {
		filter.Page = domain.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = domain.DefaultLimit
	}
	if filter.Limit > domain.MaxLimit {
		filter.Limit = domain.MaxLimit
	}

	return filter
}

// Response модели

// TimeSlotResponse слот недельного расписания ментора
type TimeSlotResponse struct {
	Name      string `json:"name"`
	Day       string `json:"day"`       // "Monday" ... "Sunday"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Available bool   `json:"available"`
}

// PricingResponse цена за длительность сессии
type PricingResponse struct {
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
}

// MentorResponse ответ с данными ментора
type MentorResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Specialization string   `json:"specialization"`
	Experience     int      `json:"experience"`
	Location       string   `json:"location"`
	ProfileImage   string   `json:"profileImage,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Languages      []string `json:"languages"`
	Available      bool     `json:"available"`

	TimeSlots []TimeSlotResponse `json:"timeSlots"`
	Pricing   []PricingResponse  `json:"pricing"`

	Rating        float64 `json:"rating"`
	TotalSessions int     `json:"totalSessions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pagination данные о страницах списка
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// MentorListResponse ответ со списком менторов
type MentorListResponse struct {
	Mentors    []MentorResponse `json:"mentors"`
	Pagination Pagination       `json:"pagination"`
}

// FilterOptionsResponse доступные значения фильтров каталога
type FilterOptionsResponse struct {
	Specializations  []string          `json:"specializations"`
	Locations        []string          `json:"locations"`
	ExperienceRanges []ExperienceRange `json:"experienceRanges"`
}

// ExperienceRange диапазон опыта для фильтра каталога.
// value - нижняя граница в годах, передаётся в minExperience
type ExperienceRange struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ExperienceRanges фиксированный список диапазонов опыта
func ExperienceRanges() []ExperienceRange {
	return []ExperienceRange{
		{Label: "0-2 years", Value: 0},
		{Label: "3-5 years", Value: 3},
		{Label: "6-10 years", Value: 6},
		{Label: "10+ years", Value: 10},
	}
}

// Методы конвертации

// FromDomainMentor конвертирует domain модель в DTO
func FromDomainMentor(m *domain.Mentor) *MentorResponse {
	if m == nil {
		return nil
	}

	slots := make([]TimeSlotResponse, 0, len(m.TimeSlots))
	for _, slot := range m.TimeSlots {
		slots = append(slots, TimeSlotResponse{
			Name:      slot.Name,
			Day:       string(slot.Day),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		})
	}

	pricing := make([]PricingResponse, 0, len(m.Pricing))
	for _, p := range m.Pricing {
		pricing = append(pricing, PricingResponse{
			DurationMinutes: p.DurationMinutes,
			Price:           p.Price,
		})
	}

	languages := m.Languages
	if languages == nil {
		languages = []string{}
	}

	return &MentorResponse{
		ID:             m.ID,
		Name:           m.Name,
		Title:          m.Title,
		Specialization: m.Specialization,
		Experience:     m.Experience,
		Location:       m.Location,
		ProfileImage:   m.ProfileImage,
		Bio:            m.Bio,
		Languages:      languages,
		Available:      m.Available,
		TimeSlots:      slots,
		Pricing:        pricing,
		Rating:         m.Rating,
		TotalSessions:  m.TotalSessions,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomainMentorList конвертирует список domain моделей в DTO
func FromDomainMentorList(mentors []*domain.Mentor) []MentorResponse {
	items := make([]MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		items = append(items, *FromDomainMentor(m))
	}
	return items
}

// NewPagination рассчитывает блок пагинации для списка.
// fetched - сколько элементов вернула текущая страница
func NewPagination(total int64, page, limit, fetched int) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: int64((page-1)*limit+fetched) < total,
		HasPrevPage: page > 1,
	}
}
