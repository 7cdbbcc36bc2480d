package repository

import (
	"context"
	"fmt"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	FindByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.PaymentDetail, error)
	CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertPayment(ctx context.Context, db execer, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, kind, status, amount, note, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Kind,
		payment.Status,
		payment.Amount,
		payment.Note,
		payment.RecordedBy,
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create %s ledger row for booking %s: %w", payment.Kind, payment.BookingID.String(), err)
	}
	return nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if err := insertPayment(ctx, r.db, payment); err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return err
	}
	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, kind, status, amount, note, recorded_by, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find payments by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payments for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(&p.ID, &p.BookingID, &p.Kind, &p.Status, &p.Amount, &p.Note, &p.RecordedBy, &p.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entity.PaymentDetail, error) {
	query := `
		SELECT pm.id, pm.booking_id, pm.kind, pm.status, pm.amount, pm.note, pm.recorded_by, pm.created_at,
		       b.reference, p.name, r.room_number
		FROM payments pm
		JOIN bookings b ON b.id = pm.booking_id
		JOIN properties p ON p.id = b.property_id
		JOIN rooms r ON r.id = b.room_id
		WHERE b.tenant_id = $1
		ORDER BY pm.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find tenant payments",
			zap.Error(err),
			zap.String("tenant_id", tenantID.String()),
		)
		return nil, fmt.Errorf("find payments for tenant %s: %w", tenantID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.PaymentDetail
	for rows.Next() {
		var p entity.PaymentDetail
		err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.Kind,
			&p.Status,
			&p.Amount,
			&p.Note,
			&p.RecordedBy,
			&p.CreatedAt,
			&p.Reference,
			&p.PropertyName,
			&p.RoomNumber,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) CountByTenantID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM payments pm
		JOIN bookings b ON b.id = pm.booking_id
		WHERE b.tenant_id = $1
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, tenantID).Scan(&total); err != nil {
		r.log.Error("Failed to count tenant payments",
			zap.Error(err),
			zap.String("tenant_id", tenantID.String()),
		)
		return 0, fmt.Errorf("count payments for tenant %s: %w", tenantID.String(), err)
	}

	return total, nil
}
