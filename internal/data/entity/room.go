package entity

import (
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
)

type Room struct {
	BaseNoDelete
	PropertyID   uuid.UUID           `db:"property_id"`
	RoomNumber   string              `db:"room_number"`
	RoomType     domain.RoomType     `db:"room_type"`
	PricingModel domain.PricingModel `db:"pricing_model"`
	Capacity     int                 `db:"capacity"`
	MonthlyRate  float64             `db:"monthly_rate"`
	DailyRate    float64             `db:"daily_rate"`
	Status       domain.RoomStatus   `db:"status"`
}

// RoomStats counts a landlord's rooms by status.
type RoomStats struct {
	Total       int64 `db:"total"`
	Available   int64 `db:"available"`
	Occupied    int64 `db:"occupied"`
	Maintenance int64 `db:"maintenance"`
}
