package request

type CreateReportRequest struct {
	PropertyID  string `json:"property_id" validate:"required,uuid"`
	Reason      string `json:"reason"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved dismissed"`
	Notes  string `json:"notes" validate:"max=1000"`
}

type ReportListRequest struct {
	PaginatedRequest
	Status string `json:"status"`
}
