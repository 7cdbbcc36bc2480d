package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"dorm-rental/pkg/domain"
)

type ReportService struct {
	c *Client
}

// Submit rejects a missing reason or a description under 10 characters
// before any request is made.
func (s *ReportService) Submit(ctx context.Context, propertyID, reason, description string) Result[Report] {
	if err := domain.ValidateReport(reason, description); err != nil {
		return invalid[Report](err.Error())
	}
	body := map[string]string{
		"property_id": propertyID,
		"reason":      strings.TrimSpace(reason),
		"description": strings.TrimSpace(description),
	}
	return callJSON[Report](ctx, s.c, http.MethodPost, "/reports", body)
}

// List returns reports for moderation. Status is pending, resolved,
// dismissed or all.
func (s *ReportService) List(ctx context.Context, status string, page PageQuery) Result[Page[Report]] {
	filter, err := domain.ParseReportFilter(status)
	if err != nil {
		return invalid[Page[Report]](err.Error())
	}
	v := page.values()
	if filter != "" {
		v.Set("status", string(filter))
	}
	return get[Page[Report]](ctx, s.c, "/admin/reports", v)
}

// UpdateStatus moves a pending report to resolved or dismissed.
func (s *ReportService) UpdateStatus(ctx context.Context, r Report, status domain.ReportStatus, notes string) Result[Report] {
	if !domain.CanResolveReport(r.Status, status) {
		return invalid[Report](fmt.Sprintf("cannot change report status from %s to %s", r.Status, status))
	}
	body := map[string]string{"status": string(status), "notes": strings.TrimSpace(notes)}
	return callJSON[Report](ctx, s.c, http.MethodPatch, pathID("/admin/reports/%s", r.ID), body)
}
