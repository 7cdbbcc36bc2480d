package response

import (
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/domain"
)

type VerificationResponse struct {
	ID            string                    `json:"id"`
	LandlordID    string                    `json:"landlord_id"`
	LandlordName  string                    `json:"landlord_name,omitempty"`
	LandlordEmail string                    `json:"landlord_email,omitempty"`
	IDType        string                    `json:"id_type"`
	IDFront       string                    `json:"id_front"`
	IDBack        string                    `json:"id_back"`
	Status        domain.VerificationStatus `json:"status"`
	Notes         string                    `json:"notes,omitempty"`
	ReviewedAt    *time.Time                `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
}

// MyVerificationResponse is the landlord's current status plus the full
// submission history as stored, newest first.
type MyVerificationResponse struct {
	Status      domain.VerificationStatus `json:"status"`
	CanResubmit bool                      `json:"can_resubmit"`
	IDTypes     []string                  `json:"id_types"`
	History     []VerificationResponse    `json:"history"`
}

func VerificationToResponse(v *entity.VerificationRequest) VerificationResponse {
	return VerificationResponse{
		ID:         v.ID.String(),
		LandlordID: v.LandlordID.String(),
		IDType:     v.IDType,
		IDFront:    v.IDFront,
		IDBack:     v.IDBack,
		Status:     v.Status,
		Notes:      v.Notes,
		ReviewedAt: v.ReviewedAt,
		CreatedAt:  v.CreatedAt,
	}
}

func VerificationItemToResponse(v *entity.VerificationListItem) VerificationResponse {
	resp := VerificationToResponse(&v.VerificationRequest)
	resp.LandlordName = v.LandlordName
	resp.LandlordEmail = v.LandlordEmail
	return resp
}
