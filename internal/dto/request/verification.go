package request

import "mime/multipart"

type ResubmitVerificationRequest struct {
	IDType  string                `form:"id_type"`
	IDFront *multipart.FileHeader `form:"-"`
	IDBack  *multipart.FileHeader `form:"-"`
}

type ReviewVerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Notes  string `json:"notes" validate:"max=1000"`
}

type VerificationListRequest struct {
	PaginatedRequest
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}
