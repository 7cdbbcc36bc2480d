package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/database"
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
	List(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]*entity.ReportListItem, error)
	Count(ctx context.Context, status domain.ReportStatus) (int64, error)
	HasPendingReport(ctx context.Context, reporterID, propertyID uuid.UUID) (bool, error)
	// Resolve closes the report only while it is still pending.
	Resolve(ctx context.Context, id uuid.UUID, status domain.ReportStatus, notes string, admin uuid.UUID, at time.Time) (bool, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

const reportColumns = `rp.id, rp.reporter_id, rp.property_id, rp.reason, rp.description, rp.status,
		       rp.admin_notes, rp.resolved_by, rp.resolved_at, rp.created_at`

func reportFields(rp *entity.Report) []any {
	return []any{
		&rp.ID,
		&rp.ReporterID,
		&rp.PropertyID,
		&rp.Reason,
		&rp.Description,
		&rp.Status,
		&rp.AdminNotes,
		&rp.ResolvedBy,
		&rp.ResolvedAt,
		&rp.CreatedAt,
	}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	query := `
		INSERT INTO reports (id, reporter_id, property_id, reason, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.ReporterID,
		report.PropertyID,
		report.Reason,
		report.Description,
		report.Status,
		report.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create report",
			zap.Error(err),
			zap.String("property_id", report.PropertyID.String()),
		)
		return fmt.Errorf("create report: %w", err)
	}

	return nil
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports rp WHERE rp.id = $1`

	var report entity.Report
	err := r.db.QueryRow(ctx, query, id).Scan(reportFields(&report)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find report",
			zap.Error(err),
			zap.String("report_id", id.String()),
		)
		return nil, fmt.Errorf("find report %s: %w", id.String(), err)
	}

	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]*entity.ReportListItem, error) {
	query := `
		SELECT ` + reportColumns + `, u.name, p.name
		FROM reports rp
		JOIN users u ON u.id = rp.reporter_id
		JOIN properties p ON p.id = rp.property_id
		WHERE ($1 = '' OR rp.status = $1)
		ORDER BY rp.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to list reports",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var items []*entity.ReportListItem
	for rows.Next() {
		var item entity.ReportListItem
		dest := append(reportFields(&item.Report), &item.ReporterName, &item.PropertyName)
		if err := rows.Scan(dest...); err != nil {
			r.log.Error("Failed to scan report row", zap.Error(err))
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}

	return items, nil
}

func (r *reportRepository) Count(ctx context.Context, status domain.ReportStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM reports WHERE ($1 = '' OR status = $1)`

	var total int64
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&total); err != nil {
		r.log.Error("Failed to count reports", zap.Error(err))
		return 0, fmt.Errorf("count reports: %w", err)
	}

	return total, nil
}

func (r *reportRepository) HasPendingReport(ctx context.Context, reporterID, propertyID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reports
			WHERE reporter_id = $1 AND property_id = $2 AND status = 'pending'
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, reporterID, propertyID).Scan(&exists); err != nil {
		r.log.Error("Failed to check pending report", zap.Error(err))
		return false, fmt.Errorf("check pending report: %w", err)
	}

	return exists, nil
}

func (r *reportRepository) Resolve(ctx context.Context, id uuid.UUID, status domain.ReportStatus, notes string, admin uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE reports
		SET status = $2, admin_notes = $3, resolved_by = $4, resolved_at = $5
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, id, status, notes, admin, at)
	if err != nil {
		r.log.Error("Failed to resolve report",
			zap.Error(err),
			zap.String("report_id", id.String()),
		)
		return false, fmt.Errorf("resolve report %s: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}
