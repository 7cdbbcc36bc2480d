package response

import (
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/domain"
)

type RoomResponse struct {
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

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:           room.ID.String(),
		PropertyID:   room.PropertyID.String(),
		RoomNumber:   room.RoomNumber,
		RoomType:     room.RoomType,
		PricingModel: room.PricingModel,
		Capacity:     room.Capacity,
		MonthlyRate:  room.MonthlyRate,
		DailyRate:    room.DailyRate,
		Status:       room.Status,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, RoomToResponse(room))
	}
	return out
}
