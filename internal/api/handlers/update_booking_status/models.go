package update_booking_status

import (
	"time"

	"github.com/PraveenKumar22C/mentor-connect/internal/domain"
	updateBookingStatus "github.com/PraveenKumar22C/mentor-connect/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status       string  `json:"status"`
	MeetingLink  *string `json:"meetingLink,omitempty"`
	CancelReason *string `json:"cancelReason,omitempty"`
}

// TimeSlotPayload снимок слота в ответе
type TimeSlotPayload struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
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
	MeetingLink     *string         `json:"meetingLink,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CancelReason    *string         `json:"cancelReason,omitempty"`
	CancelledAt     *string         `json:"cancelledAt,omitempty"` // ISO 8601 format
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *BookingResponse {
	out := &BookingResponse{
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
		MeetingLink:     resp.MeetingLink,
		Notes:           resp.Notes,
		CancelReason:    resp.CancelReason,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.CancelledAt != nil {
		cancelledAt := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledAt
	}

	return out
}
