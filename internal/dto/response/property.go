package response

import (
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/domain"
)

type PropertyResponse struct {
	ID             string                `json:"id"`
	LandlordID     string                `json:"landlord_id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	PropertyType   domain.PropertyType   `json:"property_type"`
	Address        string                `json:"address"`
	City           string                `json:"city"`
	Latitude       *float64              `json:"latitude"`
	Longitude      *float64              `json:"longitude"`
	Amenities      []string              `json:"amenities"`
	Rules          []string              `json:"rules"`
	Images         []string              `json:"images"`
	Credentials    []string              `json:"credentials,omitempty"`
	IsEligible     bool                  `json:"is_eligible"`
	Status         entity.PropertyStatus `json:"status"`
	RoomCount      int                   `json:"room_count"`
	AvailableRooms int                   `json:"available_rooms"`
	StartingRate   float64               `json:"starting_rate"`
	AverageRating  float64               `json:"average_rating"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type PropertyDetailResponse struct {
	PropertyResponse
	Rooms            []RoomResponse    `json:"rooms"`
	AllowedRoomTypes []domain.RoomType `json:"allowed_room_types"`
}

func PropertyToResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID.String(),
		LandlordID:   p.LandlordID.String(),
		Name:         p.Name,
		Description:  p.Description,
		PropertyType: p.PropertyType,
		Address:      p.Address,
		City:         p.City,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Amenities:    nonNil(p.Amenities),
		Rules:        nonNil(p.Rules),
		Images:       nonNil(p.Images),
		Credentials:  p.Credentials,
		IsEligible:   p.IsEligible,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func PropertySummaryToResponse(s *entity.PropertySummary) PropertyResponse {
	resp := PropertyToResponse(&s.Property)
	resp.RoomCount = s.RoomCount
	resp.AvailableRooms = s.AvailableRooms
	resp.StartingRate = s.StartingRate
	resp.AverageRating = s.AverageRating
	return resp
}

// PublicPropertyResponse hides landlord credentials.
func PublicPropertyResponse(s *entity.PropertySummary) PropertyResponse {
	resp := PropertySummaryToResponse(s)
	resp.Credentials = nil
	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
