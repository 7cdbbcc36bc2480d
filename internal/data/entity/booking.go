package entity

import (
	"time"

	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
)

type Booking struct {
	BaseNoDelete
	Reference          string               `db:"reference"`
	TenantID           *uuid.UUID           `db:"tenant_id"`
	GuestName          string               `db:"guest_name"`
	GuestEmail         string               `db:"guest_email"`
	GuestPhone         string               `db:"guest_phone"`
	PropertyID         uuid.UUID            `db:"property_id"`
	RoomID             uuid.UUID            `db:"room_id"`
	CheckIn            time.Time            `db:"check_in"`
	CheckOut           time.Time            `db:"check_out"`
	Amount             float64              `db:"amount"`
	Status             domain.BookingStatus `db:"status"`
	PaymentStatus      domain.PaymentStatus `db:"payment_status"`
	CancellationReason *string              `db:"cancellation_reason"`
	RefundAmount       *float64             `db:"refund_amount"`
	Notes              string               `db:"notes"`
}

// BookingDetail is a booking joined with the names a landlord sees in lists.
type BookingDetail struct {
	Booking
	PropertyName string    `db:"property_name"`
	RoomNumber   string    `db:"room_number"`
	LandlordID   uuid.UUID `db:"landlord_id"`
}

// BookingFilter narrows landlord and tenant booking lists.
type BookingFilter struct {
	LandlordID    *uuid.UUID
	TenantID      *uuid.UUID
	PropertyID    *uuid.UUID
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
	Search        string
}

// BookingStats is the aggregate the landlord dashboard shows.
type BookingStats struct {
	Total            int64   `db:"total"`
	Pending          int64   `db:"pending"`
	Confirmed        int64   `db:"confirmed"`
	Completed        int64   `db:"completed"`
	PartialCompleted int64   `db:"partial_completed"`
	Cancelled        int64   `db:"cancelled"`
	Revenue          float64 `db:"revenue"`
	Refunded         float64 `db:"refunded"`
}

// TenantSummary groups the bookings of one guest under a landlord.
type TenantSummary struct {
	TenantID       *uuid.UUID `db:"tenant_id"`
	Name           string     `db:"guest_name"`
	Email          string     `db:"guest_email"`
	Phone          string     `db:"guest_phone"`
	BookingCount   int64      `db:"booking_count"`
	ActiveBookings int64      `db:"active_bookings"`
	TotalSpent     float64    `db:"total_spent"`
	LastCheckIn    time.Time  `db:"last_check_in"`
}
