package request

type CreateBookingRequest struct {
	PropertyID string   `json:"property_id" validate:"required,uuid"`
	RoomID     string   `json:"room_id" validate:"required,uuid"`
	GuestName  string   `json:"guest_name" validate:"omitempty,max=100"`
	GuestEmail string   `json:"guest_email" validate:"omitempty,email"`
	GuestPhone string   `json:"guest_phone" validate:"omitempty,max=20"`
	CheckIn    string   `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string   `json:"check_out" validate:"required,datetime=2006-01-02"`
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Notes      string   `json:"notes" validate:"max=1000"`
}

// UpdateBookingStatusRequest drives confirm, complete, partial-complete and
// cancel. Reason and refund fields only apply to cancel.
type UpdateBookingStatusRequest struct {
	Status       string   `json:"status" validate:"required,oneof=confirmed completed partial-completed cancelled"`
	Reason       string   `json:"reason" validate:"max=500"`
	ShouldRefund bool     `json:"should_refund"`
	RefundAmount *float64 `json:"refund_amount,omitempty"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string   `json:"payment_status" validate:"required,oneof=unpaid partial paid refunded"`
	Amount        *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Note          string   `json:"note" validate:"max=500"`
}

type BookingListRequest struct {
	PaginatedRequest
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed completed partial-completed cancelled"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=unpaid partial paid refunded"`
	PropertyID    string `json:"property_id" validate:"omitempty,uuid"`
	Search        string `json:"search"`
}
