package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func completeDraft() PropertyDraft {
	return PropertyDraft{
		Name:         "Sunrise Dorm",
		Description:  "Near the university",
		PropertyType: string(PropertyTypeDormitory),
		Address:      "12 Session Rd",
		City:         "Baguio",
		Latitude:     ptr(16.41),
		Longitude:    ptr(120.59),
		Amenities:    []string{"wifi"},
	}
}

func TestPropertyDraftSteps(t *testing.T) {
	d := completeDraft()
	assert.Empty(t, d.Validate(false))

	d.PropertyType = "castle"
	assert.Contains(t, d.ValidateBasicInfo(), "property_type")

	d = completeDraft()
	d.Latitude = nil
	assert.Equal(t, FieldErrors{"location": "pin the property on the map"}, d.ValidateLocation())

	d = completeDraft()
	d.Longitude = ptr(200.0)
	assert.Contains(t, d.ValidateLocation(), "longitude")

	d = completeDraft()
	d.IsEligible = true
	assert.Contains(t, d.ValidateCredentials(), "credentials")
	d.Credentials = 1
	assert.Empty(t, d.ValidateCredentials())
}

func TestPropertyDraftOnlyNeedsName(t *testing.T) {
	assert.Empty(t, PropertyDraft{Name: "WIP"}.Validate(true))
	assert.Contains(t, PropertyDraft{}.Validate(true), "name")
	assert.Contains(t, PropertyDraft{Name: "WIP", PropertyType: "castle"}.Validate(true), "property_type")

	errs := PropertyDraft{Name: "WIP"}.Validate(false)
	assert.Contains(t, errs, "property_type")
	assert.Contains(t, errs, "address")
}

func TestDefaultAmount(t *testing.T) {
	assert.Equal(t, 1500.0, DefaultAmount(500, 9000, 3))
	assert.Equal(t, 9000.0, DefaultAmount(0, 9000, 30))
	assert.Equal(t, 18000.0, DefaultAmount(0, 9000, 31))
	assert.Equal(t, 0.0, DefaultAmount(500, 9000, 0))
}
