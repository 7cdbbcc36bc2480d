package domain

import "fmt"

type VerificationStatus string

const (
	VerificationNotSubmitted VerificationStatus = "not_submitted"
	VerificationPending      VerificationStatus = "pending"
	VerificationRejected     VerificationStatus = "rejected"
	VerificationApproved     VerificationStatus = "approved"
)

var IDTypes = []string{
	"passport",
	"drivers_license",
	"national_id",
	"umid",
	"postal_id",
	"voters_id",
	"prc_id",
}

// CanResubmit reports whether a landlord in status s may post new documents.
func CanResubmit(s VerificationStatus) bool {
	return s == VerificationNotSubmitted || s == VerificationRejected
}

// CanReview allows an admin decision only on a pending request.
func CanReview(from, to VerificationStatus) bool {
	return from == VerificationPending && (to == VerificationApproved || to == VerificationRejected)
}

func ParseReviewDecision(s string) (VerificationStatus, error) {
	switch v := VerificationStatus(s); v {
	case VerificationApproved, VerificationRejected:
		return v, nil
	default:
		return "", fmt.Errorf("invalid verification decision: %q", s)
	}
}
