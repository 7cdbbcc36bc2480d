package response

import (
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID                 string                 `json:"id"`
	Reference          string                 `json:"reference"`
	TenantID           *string                `json:"tenant_id,omitempty"`
	GuestName          string                 `json:"guest_name"`
	GuestEmail         string                 `json:"guest_email"`
	GuestPhone         string                 `json:"guest_phone"`
	PropertyID         string                 `json:"property_id"`
	PropertyName       string                 `json:"property_name"`
	RoomID             string                 `json:"room_id"`
	RoomNumber         string                 `json:"room_number"`
	CheckIn            string                 `json:"check_in"`
	CheckOut           string                 `json:"check_out"`
	Nights             int                    `json:"nights"`
	Amount             float64                `json:"amount"`
	Status             domain.BookingStatus   `json:"status"`
	PaymentStatus      domain.PaymentStatus   `json:"payment_status"`
	CancellationReason *string                `json:"cancellation_reason,omitempty"`
	RefundAmount       *float64               `json:"refund_amount,omitempty"`
	Notes              string                 `json:"notes,omitempty"`
	NextStatuses       []domain.BookingStatus `json:"next_statuses"`
	CanUpdatePayment   bool                   `json:"can_update_payment"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Payments []PaymentResponse `json:"payments"`
}

type PaymentResponse struct {
	ID           string             `json:"id"`
	BookingID    string             `json:"booking_id"`
	Kind         entity.PaymentKind `json:"kind"`
	Status       string             `json:"status"`
	Amount       float64            `json:"amount"`
	Note         string             `json:"note,omitempty"`
	Reference    string             `json:"reference,omitempty"`
	PropertyName string             `json:"property_name,omitempty"`
	RoomNumber   string             `json:"room_number,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Helper converters
func BookingToResponse(b *entity.BookingDetail) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID.String(),
		Reference:          b.Reference,
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		PropertyID:         b.PropertyID.String(),
		PropertyName:       b.PropertyName,
		RoomID:             b.RoomID.String(),
		RoomNumber:         b.RoomNumber,
		CheckIn:            b.CheckIn.Format(dateLayout),
		CheckOut:           b.CheckOut.Format(dateLayout),
		Nights:             domain.Nights(b.CheckIn, b.CheckOut),
		Amount:             b.Amount,
		Status:             b.Status,
		PaymentStatus:      b.PaymentStatus,
		CancellationReason: b.CancellationReason,
		RefundAmount:       b.RefundAmount,
		Notes:              b.Notes,
		NextStatuses:       domain.NextStatuses(b.Status),
		CanUpdatePayment:   domain.CanUpdatePayment(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if b.TenantID != nil {
		id := b.TenantID.String()
		resp.TenantID = &id
	}
	return resp
}

func BookingsToResponse(bookings []*entity.BookingDetail) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		BookingID: p.BookingID.String(),
		Kind:      p.Kind,
		Status:    p.Status,
		Amount:    p.Amount,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

func PaymentDetailToResponse(p *entity.PaymentDetail) PaymentResponse {
	resp := PaymentToResponse(&p.Payment)
	resp.Reference = p.Reference
	resp.PropertyName = p.PropertyName
	resp.RoomNumber = p.RoomNumber
	return resp
}
