package entity

import (
	"time"

	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
)

type VerificationRequest struct {
	BaseSimple
	LandlordID uuid.UUID                 `db:"landlord_id"`
	IDType     string                    `db:"id_type"`
	IDFront    string                    `db:"id_front"`
	IDBack     string                    `db:"id_back"`
	Status     domain.VerificationStatus `db:"status"`
	Notes      string                    `db:"notes"`
	ReviewedBy *uuid.UUID                `db:"reviewed_by"`
	ReviewedAt *time.Time                `db:"reviewed_at"`
}

// VerificationListItem is a request with the landlord's contact details.
type VerificationListItem struct {
	VerificationRequest
	LandlordName  string `db:"landlord_name"`
	LandlordEmail string `db:"landlord_email"`
}
