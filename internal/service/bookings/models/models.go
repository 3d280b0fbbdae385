package models

import (
	"errors"
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid session date")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	MentorID     *int64  `json:"mentorId,omitempty"`
	StudentEmail *string `json:"studentEmail,omitempty"`
	Status       *string `json:"status,omitempty"`
	SessionDate  *string `json:"sessionDate,omitempty"` // "2025-10-15"
	Page         int     `json:"page,omitempty"`
	Limit        int     `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
// Нормализует page/limit к допустимым значениям
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		MentorID:     r.MentorID,
		StudentEmail: r.StudentEmail,
		Page:         r.Page,
		Limit:        r.Limit,
	}

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if r.SessionDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.SessionDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.SessionDate = &date
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

	return filter, nil
}

// Response модели

// TimeSlotResponse снимок слота в ответе
type TimeSlotResponse struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// MentorInfo публичные данные ментора в ответе бронирования
type MentorInfo struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Specialization string `json:"specialization"`
	ProfileImage   string `json:"profileImage,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64            `json:"id"`
	MentorID        int64            `json:"mentorId"`
	StudentName     string           `json:"studentName"`
	StudentEmail    string           `json:"studentEmail"`
	StudentPhone    string           `json:"studentPhone"`
	SessionDate     string           `json:"sessionDate"` // "2025-10-15"
	TimeSlot        TimeSlotResponse `json:"timeSlot"`
	DurationMinutes int              `json:"duration"`
	Price           float64          `json:"price"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"paymentStatus"`

	Mentor *MentorInfo `json:"mentor,omitempty"`

	MeetingLink  *string `json:"meetingLink,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CancelReason *string `json:"cancelReason,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"` // ISO 8601 format

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

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// mentor может быть nil - тогда блок mentor в ответе опускается
func FromDomainBooking(b *domain.Booking, mentor *domain.Mentor) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		MentorID:     b.MentorID,
		StudentName:  b.StudentName,
		StudentEmail: b.StudentEmail,
		StudentPhone: b.StudentPhone,
		SessionDate:  b.SessionDate.Format(domain.DateFormat),
		TimeSlot: TimeSlotResponse{
			Name:      b.TimeSlot.Name,
			StartTime: b.TimeSlot.StartTime.String(),
			EndTime:   b.TimeSlot.EndTime.String(),
		},
		DurationMinutes: b.DurationMinutes,
		Price:           b.Price,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		MeetingLink:     b.MeetingLink,
		Notes:           b.Notes,
		CancelReason:    b.CancelReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	if mentor != nil {
		resp.Mentor = &MentorInfo{
			ID:             mentor.ID,
			Name:           mentor.Name,
			Title:          mentor.Title,
			Specialization: mentor.Specialization,
			ProfileImage:   mentor.ProfileImage,
		}
	}

	return resp
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
