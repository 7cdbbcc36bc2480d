package domain

import (
	"fmt"
	"slices"
	"strings"
)

type PropertyType string

const (
	PropertyTypeDormitory     PropertyType = "dormitory"
	PropertyTypeBoardingHouse PropertyType = "boarding_house"
	PropertyTypeBedSpacer     PropertyType = "bed_spacer"
	PropertyTypeApartment     PropertyType = "apartment"
)

type RoomType string

const (
	RoomTypeSingle    RoomType = "single"
	RoomTypeDouble    RoomType = "double"
	RoomTypeQuad      RoomType = "quad"
	RoomTypeBedSpacer RoomType = "bedSpacer"
)

type PricingModel string

const (
	PricingFullRoom PricingModel = "full_room"
	PricingPerBed   PricingModel = "per_bed"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

const (
	MinRoomCapacity = 1
	MaxRoomCapacity = 10
)

var allRoomTypes = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeQuad, RoomTypeBedSpacer}

var defaultCapacity = map[RoomType]int{
	RoomTypeSingle: 1,
	RoomTypeDouble: 2,
	RoomTypeQuad:   4,
}

func ParsePropertyType(s string) (PropertyType, error) {
	switch t := PropertyType(strings.TrimSpace(s)); t {
	case PropertyTypeDormitory, PropertyTypeBoardingHouse, PropertyTypeBedSpacer, PropertyTypeApartment:
		return t, nil
	default:
		return "", fmt.Errorf("invalid property type: %q", s)
	}
}

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch st := RoomStatus(strings.TrimSpace(s)); st {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return st, nil
	default:
		return "", fmt.Errorf("invalid room status: %q", s)
	}
}

// AllowedRoomTypes lists the room types selectable under a property type.
func AllowedRoomTypes(pt PropertyType) []RoomType {
	switch pt {
	case PropertyTypeDormitory, PropertyTypeBoardingHouse:
		return []RoomType{RoomTypeSingle, RoomTypeBedSpacer}
	case PropertyTypeApartment:
		return []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeQuad}
	default:
		return slices.Clone(allRoomTypes)
	}
}

// RoomSpec is the part of a room that depends on its property type.
type RoomSpec struct {
	RoomType     RoomType
	PricingModel PricingModel
	Capacity     int // 0 means derive from room type
}

// ResolveRoomSpec applies the property-type constraints to a requested
// room and returns the spec to persist.
func ResolveRoomSpec(pt PropertyType, req RoomSpec) (RoomSpec, error) {
	if !slices.Contains(allRoomTypes, req.RoomType) {
		return RoomSpec{}, fmt.Errorf("invalid room type: %q", req.RoomType)
	}
	if !slices.Contains(AllowedRoomTypes(pt), req.RoomType) {
		return RoomSpec{}, fmt.Errorf("invalid room type %s for %s property", req.RoomType, pt)
	}

	out := req
	switch {
	case pt == PropertyTypeBedSpacer:
		out.PricingModel = PricingPerBed
	case out.PricingModel == "":
		out.PricingModel = PricingFullRoom
	case out.PricingModel != PricingFullRoom && out.PricingModel != PricingPerBed:
		return RoomSpec{}, fmt.Errorf("invalid pricing model: %q", req.PricingModel)
	}

	if out.Capacity == 0 {
		out.Capacity = defaultCapacity[out.RoomType]
	}
	out.Capacity = ClampCapacity(out.Capacity)

	return out, nil
}

func ClampCapacity(n int) int {
	if n < MinRoomCapacity {
		return MinRoomCapacity
	}
	if n > MaxRoomCapacity {
		return MaxRoomCapacity
	}
	return n
}

// ConcurrentStays is how many open bookings may overlap on a room: one for a
// full-room rental, one per bed for a per-bed room.
func ConcurrentStays(pm PricingModel, capacity int) int {
	if pm == PricingPerBed {
		return ClampCapacity(capacity)
	}
	return 1
}
