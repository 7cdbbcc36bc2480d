package usecase

import (
	"fmt"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/dto/request"

	"github.com/google/uuid"
)

func parseID(kind, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID format %s: %w", kind, value, err)
	}
	return id, nil
}

func normalizePage(req *request.PaginatedRequest) {
	if req.Page < 1 {
		req.Page = 1
	}
	req.PerPage = req.Limit()
}

// ownedProperty enforces that a property exists and belongs to the landlord.
func ownedProperty(p *entity.Property, landlordID uuid.UUID, id string) error {
	if p == nil {
		return fmt.Errorf("property %s not found", id)
	}
	if p.LandlordID != landlordID {
		return fmt.Errorf("forbidden: property %s belongs to another landlord", id)
	}
	return nil
}
