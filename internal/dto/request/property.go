package request

import "mime/multipart"

// PropertyRequest is the multipart wizard submission. List fields accept
// repeated values, a JSON array or a comma separated string.
type PropertyRequest struct {
	Name         string   `form:"name"`
	Description  string   `form:"description"`
	PropertyType string   `form:"property_type"`
	Address      string   `form:"address"`
	City         string   `form:"city"`
	Latitude     *float64 `form:"latitude"`
	Longitude    *float64 `form:"longitude"`
	Amenities    []string `form:"amenities"`
	Rules        []string `form:"rules"`
	IsEligible   bool     `form:"is_eligible"`
	IsDraft      bool     `form:"is_draft"`
	RemoveImages []string `form:"remove_images"`

	Images      []*multipart.FileHeader `form:"-"`
	Credentials []*multipart.FileHeader `form:"-"`
}

type DeletePropertyRequest struct {
	Password string `json:"password" validate:"required"`
}

type PropertyListRequest struct {
	PaginatedRequest
	City         string `json:"city"`
	PropertyType string `json:"type" validate:"omitempty,oneof=dormitory boarding_house bed_spacer apartment"`
	Search       string `json:"search"`
}
