package client

import (
	"time"

	"dorm-rental/pkg/domain"
)

type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

type Session struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Booking struct {
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

type BookingDetail struct {
	Booking
	Payments []Payment `json:"payments"`
}

type Payment struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	Kind         string    `json:"kind"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	Note         string    `json:"note,omitempty"`
	Reference    string    `json:"reference,omitempty"`
	PropertyName string    `json:"property_name,omitempty"`
	RoomNumber   string    `json:"room_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Property struct {
	ID             string              `json:"id"`
	LandlordID     string              `json:"landlord_id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	PropertyType   domain.PropertyType `json:"property_type"`
	Address        string              `json:"address"`
	City           string              `json:"city"`
	Latitude       *float64            `json:"latitude"`
	Longitude      *float64            `json:"longitude"`
	Amenities      []string            `json:"amenities"`
	Rules          []string            `json:"rules"`
	Images         []string            `json:"images"`
	Credentials    []string            `json:"credentials,omitempty"`
	IsEligible     bool                `json:"is_eligible"`
	Status         string              `json:"status"`
	RoomCount      int                 `json:"room_count"`
	AvailableRooms int                 `json:"available_rooms"`
	StartingRate   float64             `json:"starting_rate"`
	AverageRating  float64             `json:"average_rating"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type PropertyDetail struct {
	Property
	Rooms            []Room            `json:"rooms"`
	AllowedRoomTypes []domain.RoomType `json:"allowed_room_types"`
}

type Room struct {
	ID           string              `json:"id"`
	PropertyID   string              `json:"property_id"`
	RoomNumber   string              `json:"room_number"`
	RoomType     domain.RoomType     `json:"room_type"`
	PricingModel domain.PricingModel `json:"pricing_model"`
	Capacity     int                 `json:"capacity"`
	MonthlyRate  float64             `json:"monthly_rate"`
	DailyRate    float64             `json:"daily_rate"`
	Status       domain.RoomStatus   `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type Verification struct {
	ID         string                    `json:"id"`
	LandlordID string                    `json:"landlord_id"`
	IDType     string                    `json:"id_type"`
	IDFront    string                    `json:"id_front"`
	IDBack     string                    `json:"id_back"`
	Status     domain.VerificationStatus `json:"status"`
	Notes      string                    `json:"notes,omitempty"`
	ReviewedAt *time.Time                `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// MyVerification is the landlord's status with the submission history as
// the server returned it.
type MyVerification struct {
	Status      domain.VerificationStatus `json:"status"`
	CanResubmit bool                      `json:"can_resubmit"`
	IDTypes     []string                  `json:"id_types"`
	History     []Verification            `json:"history"`
}

type Report struct {
	ID           string              `json:"id"`
	ReporterID   string              `json:"reporter_id"`
	ReporterName string              `json:"reporter_name,omitempty"`
	PropertyID   string              `json:"property_id"`
	PropertyName string              `json:"property_name,omitempty"`
	Reason       string              `json:"reason"`
	Description  string              `json:"description"`
	Status       domain.ReportStatus `json:"status"`
	AdminNotes   string              `json:"admin_notes,omitempty"`
	ResolvedAt   *time.Time          `json:"resolved_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

type Tenant struct {
	TenantID       *string `json:"tenant_id,omitempty"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	BookingCount   int64   `json:"booking_count"`
	ActiveBookings int64   `json:"active_bookings"`
	TotalSpent     float64 `json:"total_spent"`
	LastCheckIn    string  `json:"last_check_in"`
}

type DashboardStats struct {
	Properties struct {
		Total int64 `json:"total"`
	} `json:"properties"`
	Rooms struct {
		Total       int64 `json:"total"`
		Available   int64 `json:"available"`
		Occupied    int64 `json:"occupied"`
		Maintenance int64 `json:"maintenance"`
	} `json:"rooms"`
	Bookings struct {
		Total            int64 `json:"total"`
		Pending          int64 `json:"pending"`
		Confirmed        int64 `json:"confirmed"`
		Completed        int64 `json:"completed"`
		PartialCompleted int64 `json:"partial_completed"`
		Cancelled        int64 `json:"cancelled"`
	} `json:"bookings"`
	Revenue        float64   `json:"revenue"`
	Refunded       float64   `json:"refunded"`
	OccupancyRate  float64   `json:"occupancy_rate"`
	RecentBookings []Booking `json:"recent_bookings"`
	Verification   string    `json:"verification_status"`
	Warnings       []string  `json:"warnings,omitempty"`
}
