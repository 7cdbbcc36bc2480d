package response

import (
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/domain"
)

type ReportResponse struct {
	ID           string              `json:"id"`
	ReporterID   string              `json:"reporter_id"`
	ReporterName string              `json:"reporter_name,omitempty"`
	PropertyID   string              `json:"property_id"`
	PropertyName string              `json:"property_name,omitempty"`
	Reason       string              `json:"reason"`
	Description  string              `json:"description"`
	Status       domain.ReportStatus `json:"status"`
	AdminNotes   string              `json:"admin_notes,omitempty"`
	ResolvedAt   *time.Time          `json:"resolved_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

func ReportToResponse(r *entity.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID.String(),
		ReporterID:  r.ReporterID.String(),
		PropertyID:  r.PropertyID.String(),
		Reason:      r.Reason,
		Description: r.Description,
		Status:      r.Status,
		AdminNotes:  r.AdminNotes,
		ResolvedAt:  r.ResolvedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func ReportItemToResponse(r *entity.ReportListItem) ReportResponse {
	resp := ReportToResponse(&r.Report)
	resp.ReporterName = r.ReporterName
	resp.PropertyName = r.PropertyName
	return resp
}
