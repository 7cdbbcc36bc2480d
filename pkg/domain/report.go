package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// ReportFilterAll lists reports in every status.
const ReportFilterAll = "all"

const MinReportDescription = 10

var ErrReportIncomplete = errors.New("Please provide a reason and description (min 10 chars)")

var ReportReasons = []string{
	"misleading_listing",
	"fraud_or_scam",
	"safety_concern",
	"unsanitary_conditions",
	"harassment",
	"illegal_activity",
	"other",
}

// ValidateReport checks a tenant report before it is sent or stored.
func ValidateReport(reason, description string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" || utf8.RuneCountInString(strings.TrimSpace(description)) < MinReportDescription {
		return ErrReportIncomplete
	}
	if !slices.Contains(ReportReasons, reason) {
		return fmt.Errorf("invalid report reason: %q", reason)
	}
	return nil
}

// CanResolveReport allows only pending -> resolved|dismissed.
func CanResolveReport(from, to ReportStatus) bool {
	return from == ReportStatusPending && (to == ReportStatusResolved || to == ReportStatusDismissed)
}

// ParseReportFilter maps a status query value to the status to filter on.
// An empty result means no filter.
func ParseReportFilter(s string) (ReportStatus, error) {
	switch s = strings.TrimSpace(s); s {
	case "", ReportFilterAll:
		return "", nil
	case string(ReportStatusPending), string(ReportStatusResolved), string(ReportStatusDismissed):
		return ReportStatus(s), nil
	default:
		return "", fmt.Errorf("invalid report status filter: %q", s)
	}
}
