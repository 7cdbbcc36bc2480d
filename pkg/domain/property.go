package domain

import (
	"maps"
	"strings"
	"unicode/utf8"
)

const (
	MaxPropertyName  = 150
	MaxListItems     = 50
	MaxListItemChars = 100
)

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

// PropertyDraft is the accumulated state of the property wizard. Each step
// validates independently; a full submission must pass all of them.
type PropertyDraft struct {
	Name         string
	Description  string
	PropertyType string
	Address      string
	City         string
	Latitude     *float64
	Longitude    *float64
	Amenities    []string
	Rules        []string
	IsEligible   bool
	Credentials  int // credential files already stored plus new uploads
}

func (d PropertyDraft) ValidateBasicInfo() FieldErrors {
	errs := FieldErrors{}
	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errs["name"] = "is required"
	case utf8.RuneCountInString(name) > MaxPropertyName:
		errs["name"] = "must be at most 150 characters"
	}
	if d.PropertyType == "" {
		errs["property_type"] = "is required"
	} else if _, err := ParsePropertyType(d.PropertyType); err != nil {
		errs["property_type"] = "must be one of: dormitory boarding_house bed_spacer apartment"
	}
	if strings.TrimSpace(d.Description) == "" {
		errs["description"] = "is required"
	}
	return errs
}

func (d PropertyDraft) ValidateLocation() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Address) == "" {
		errs["address"] = "is required"
	}
	if strings.TrimSpace(d.City) == "" {
		errs["city"] = "is required"
	}
	if d.Latitude == nil || d.Longitude == nil {
		errs["location"] = "pin the property on the map"
		return errs
	}
	if *d.Latitude < -90 || *d.Latitude > 90 {
		errs["latitude"] = "must be between -90 and 90"
	}
	if *d.Longitude < -180 || *d.Longitude > 180 {
		errs["longitude"] = "must be between -180 and 180"
	}
	return errs
}

func (d PropertyDraft) ValidateRulesAmenities() FieldErrors {
	errs := FieldErrors{}
	check := func(field string, items []string) {
		if len(items) > MaxListItems {
			errs[field] = "must have at most 50 items"
			return
		}
		for _, item := range items {
			if utf8.RuneCountInString(item) > MaxListItemChars {
				errs[field] = "items must be at most 100 characters"
				return
			}
		}
	}
	check("amenities", d.Amenities)
	check("rules", d.Rules)
	return errs
}

// ValidateCredentials requires at least one credential document when the
// property is marked eligible.
func (d PropertyDraft) ValidateCredentials() FieldErrors {
	errs := FieldErrors{}
	if d.IsEligible && d.Credentials == 0 {
		errs["credentials"] = "upload at least one credential document"
	}
	return errs
}

// Validate runs the wizard steps for a submission. Drafts only need a name.
func (d PropertyDraft) Validate(isDraft bool) FieldErrors {
	if isDraft {
		errs := FieldErrors{}
		if strings.TrimSpace(d.Name) == "" {
			errs["name"] = "is required"
		}
		if d.PropertyType != "" {
			if _, err := ParsePropertyType(d.PropertyType); err != nil {
				errs["property_type"] = "must be one of: dormitory boarding_house bed_spacer apartment"
			}
		}
		return errs
	}

	errs := d.ValidateBasicInfo()
	maps.Copy(errs, d.ValidateLocation())
	maps.Copy(errs, d.ValidateRulesAmenities())
	maps.Copy(errs, d.ValidateCredentials())
	return errs
}
