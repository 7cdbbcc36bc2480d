package response

import (
	"dorm-rental/internal/data/entity"
)

type TenantResponse struct {
	TenantID       *string `json:"tenant_id,omitempty"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	BookingCount   int64   `json:"booking_count"`
	ActiveBookings int64   `json:"active_bookings"`
	TotalSpent     float64 `json:"total_spent"`
	LastCheckIn    string  `json:"last_check_in"`
}

func TenantToResponse(t *entity.TenantSummary) TenantResponse {
	resp := TenantResponse{
		Name:           t.Name,
		Email:          t.Email,
		Phone:          t.Phone,
		BookingCount:   t.BookingCount,
		ActiveBookings: t.ActiveBookings,
		TotalSpent:     t.TotalSpent,
		LastCheckIn:    t.LastCheckIn.Format(dateLayout),
	}
	if t.TenantID != nil {
		id := t.TenantID.String()
		resp.TenantID = &id
	}
	return resp
}
