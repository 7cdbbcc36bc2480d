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

type VerificationRepository interface {
	Create(ctx context.Context, req *entity.VerificationRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VerificationRequest, error)
	FindLatestByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.VerificationRequest, error)
	FindByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*entity.VerificationRequest, error)
	List(ctx context.Context, status domain.VerificationStatus, limit, offset int) ([]*entity.VerificationListItem, error)
	Count(ctx context.Context, status domain.VerificationStatus) (int64, error)
	// Review applies an admin decision only while the request is still pending.
	Review(ctx context.Context, id uuid.UUID, status domain.VerificationStatus, notes string, reviewer uuid.UUID, at time.Time) (bool, error)
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

const verificationColumns = `v.id, v.landlord_id, v.id_type, v.id_front, v.id_back, v.status,
		       v.notes, v.reviewed_by, v.reviewed_at, v.created_at`

func verificationFields(v *entity.VerificationRequest) []any {
	return []any{
		&v.ID,
		&v.LandlordID,
		&v.IDType,
		&v.IDFront,
		&v.IDBack,
		&v.Status,
		&v.Notes,
		&v.ReviewedBy,
		&v.ReviewedAt,
		&v.CreatedAt,
	}
}

func (r *verificationRepository) Create(ctx context.Context, req *entity.VerificationRequest) error {
	query := `
		INSERT INTO verification_requests (id, landlord_id, id_type, id_front, id_back, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		req.ID,
		req.LandlordID,
		req.IDType,
		req.IDFront,
		req.IDBack,
		req.Status,
		req.Notes,
		req.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create verification request",
			zap.Error(err),
			zap.String("landlord_id", req.LandlordID.String()),
		)
		return fmt.Errorf("create verification request for landlord %s: %w", req.LandlordID.String(), err)
	}

	return nil
}

func (r *verificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VerificationRequest, error) {
	query := `SELECT ` + verificationColumns + ` FROM verification_requests v WHERE v.id = $1`

	var v entity.VerificationRequest
	err := r.db.QueryRow(ctx, query, id).Scan(verificationFields(&v)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find verification request",
			zap.Error(err),
			zap.String("verification_id", id.String()),
		)
		return nil, fmt.Errorf("find verification request %s: %w", id.String(), err)
	}

	return &v, nil
}

func (r *verificationRepository) FindLatestByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.VerificationRequest, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verification_requests v
		WHERE v.landlord_id = $1
		ORDER BY v.created_at DESC
		LIMIT 1
	`

	var v entity.VerificationRequest
	err := r.db.QueryRow(ctx, query, landlordID).Scan(verificationFields(&v)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest verification request",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()),
		)
		return nil, fmt.Errorf("find verification for landlord %s: %w", landlordID.String(), err)
	}

	return &v, nil
}

// FindByLandlord returns the submission history, newest first.
func (r *verificationRepository) FindByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*entity.VerificationRequest, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verification_requests v
		WHERE v.landlord_id = $1
		ORDER BY v.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, landlordID)
	if err != nil {
		r.log.Error("Failed to find verification history",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()),
		)
		return nil, fmt.Errorf("find verification history for landlord %s: %w", landlordID.String(), err)
	}
	defer rows.Close()

	var history []*entity.VerificationRequest
	for rows.Next() {
		var v entity.VerificationRequest
		if err := rows.Scan(verificationFields(&v)...); err != nil {
			r.log.Error("Failed to scan verification row", zap.Error(err))
			return nil, fmt.Errorf("scan verification row: %w", err)
		}
		history = append(history, &v)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate verification rows: %w", err)
	}

	return history, nil
}

func (r *verificationRepository) List(ctx context.Context, status domain.VerificationStatus, limit, offset int) ([]*entity.VerificationListItem, error) {
	query := `
		SELECT ` + verificationColumns + `, u.name, u.email
		FROM verification_requests v
		JOIN users u ON u.id = v.landlord_id
		WHERE ($1 = '' OR v.status = $1)
		ORDER BY v.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to list verification requests",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("list verification requests: %w", err)
	}
	defer rows.Close()

	var items []*entity.VerificationListItem
	for rows.Next() {
		var item entity.VerificationListItem
		dest := append(verificationFields(&item.VerificationRequest), &item.LandlordName, &item.LandlordEmail)
		if err := rows.Scan(dest...); err != nil {
			r.log.Error("Failed to scan verification row", zap.Error(err))
			return nil, fmt.Errorf("scan verification row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate verification rows: %w", err)
	}

	return items, nil
}

func (r *verificationRepository) Count(ctx context.Context, status domain.VerificationStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM verification_requests WHERE ($1 = '' OR status = $1)`

	var total int64
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&total); err != nil {
		r.log.Error("Failed to count verification requests", zap.Error(err))
		return 0, fmt.Errorf("count verification requests: %w", err)
	}

	return total, nil
}

func (r *verificationRepository) Review(ctx context.Context, id uuid.UUID, status domain.VerificationStatus, notes string, reviewer uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE verification_requests
		SET status = $2, notes = $3, reviewed_by = $4, reviewed_at = $5
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.db.Exec(ctx, query, id, status, notes, reviewer, at)
	if err != nil {
		r.log.Error("Failed to review verification request",
			zap.Error(err),
			zap.String("verification_id", id.String()),
		)
		return false, fmt.Errorf("review verification request %s: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}
