package entity

import (
	"time"

	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
)

type Report struct {
	BaseSimple
	ReporterID  uuid.UUID           `db:"reporter_id"`
	PropertyID  uuid.UUID           `db:"property_id"`
	Reason      string              `db:"reason"`
	Description string              `db:"description"`
	Status      domain.ReportStatus `db:"status"`
	AdminNotes  string              `db:"admin_notes"`
	ResolvedBy  *uuid.UUID          `db:"resolved_by"`
	ResolvedAt  *time.Time          `db:"resolved_at"`
}

type ReportListItem struct {
	Report
	ReporterName string `db:"reporter_name"`
	PropertyName string `db:"property_name"`
}
