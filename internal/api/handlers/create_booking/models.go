package create_booking

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	createBooking "github.com/PraveenKumar22C/mentor-connect/internal/usecase/create_booking"
	"github.com/PraveenKumar22C/mentor-connect/pkg/types"
)

// TimeSlotPayload выбранный слот в HTTP запросе
type TimeSlotPayload struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	MentorID        int64           `json:"mentorId"`
	StudentName     string          `json:"studentName"`
	StudentEmail    string          `json:"studentEmail"`
	StudentPhone    string          `json:"studentPhone"`
	SessionDate     string          `json:"sessionDate"` // "2025-10-15"
	TimeSlot        TimeSlotPayload `json:"timeSlot"`
	DurationMinutes int             `json:"duration"`
	Price           float64         `json:"price"`
	Notes           *string         `json:"notes,omitempty"`
}

// MentorInfo публичные данные ментора в ответе
type MentorInfo struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Specialization string `json:"specialization"`
	ProfileImage   string `json:"profileImage,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64           `json:"id"`
	MentorID        int64           `json:"mentorId"`
	StudentName     string          `json:"studentName"`
	StudentEmail    string          `json:"studentEmail"`
	StudentPhone    string          `json:"studentPhone"`
	SessionDate     string          `json:"sessionDate"`
	TimeSlot        TimeSlotPayload `json:"timeSlot"`
	DurationMinutes int             `json:"duration"`
	Price           float64         `json:"price"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	Notes           *string         `json:"notes,omitempty"`
	Mentor          MentorInfo      `json:"mentor"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	sessionDate, err := time.Parse(domain.DateFormat, r.SessionDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.TimeSlot.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.TimeSlot.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		MentorID:     r.MentorID,
		StudentName:  r.StudentName,
		StudentEmail: r.StudentEmail,
		StudentPhone: r.StudentPhone,
		SessionDate:  sessionDate,
		TimeSlot: createBooking.TimeSlot{
			Name:      r.TimeSlot.Name,
			StartTime: startTime,
			EndTime:   endTime,
		},
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		MentorID:     resp.MentorID,
		StudentName:  resp.StudentName,
		StudentEmail: resp.StudentEmail,
		StudentPhone: resp.StudentPhone,
		SessionDate:  resp.SessionDate.Format(domain.DateFormat),
		TimeSlot: TimeSlotPayload{
			Name:      resp.TimeSlot.Name,
			StartTime: resp.TimeSlot.StartTime.String(),
			EndTime:   resp.TimeSlot.EndTime.String(),
		},
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		Notes:           resp.Notes,
		Mentor: MentorInfo{
			ID:             resp.MentorID,
			Name:           resp.MentorName,
			Title:          resp.MentorTitle,
			Specialization: resp.MentorSpecialization,
			ProfileImage:   resp.MentorProfileImage,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
