package entity

import (
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyStatusDraft     PropertyStatus = "draft"
	PropertyStatusPublished PropertyStatus = "published"
)

type Property struct {
	Base
	LandlordID   uuid.UUID           `db:"landlord_id"`
	Name         string              `db:"name"`
	Description  string              `db:"description"`
	PropertyType domain.PropertyType `db:"property_type"`
	Address      string              `db:"address"`
	City         string              `db:"city"`
	Latitude     *float64            `db:"latitude"`
	Longitude    *float64            `db:"longitude"`
	Amenities    []string            `db:"amenities"`
	Rules        []string            `db:"rules"`
	Images       []string            `db:"images"`
	Credentials  []string            `db:"credentials"`
	IsEligible   bool                `db:"is_eligible"`
	Status       PropertyStatus      `db:"status"`
}

// PropertySummary is a property row joined with its room aggregates.
type PropertySummary struct {
	Property
	RoomCount      int     `db:"room_count"`
	AvailableRooms int     `db:"available_rooms"`
	StartingRate   float64 `db:"starting_rate"`
	AverageRating  float64 `db:"average_rating"`
}

// PropertyFilter narrows the public listing.
type PropertyFilter struct {
	City         string
	PropertyType domain.PropertyType
	Search       string
}
