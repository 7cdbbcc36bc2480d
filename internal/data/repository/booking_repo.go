package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/database"
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error)
	List(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingDetail, error)
	Count(ctx context.Context, filter entity.BookingFilter) (int64, error)

	// Status changes only apply while the stored status still equals from.
	// A false result means another request changed the booking first.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, from domain.BookingStatus, reason string, refund float64, ledger *entity.Payment) (bool, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, ledger *entity.Payment) (bool, error)

	// Business queries
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
	CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	CountActiveByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
	StatsByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.BookingStats, error)
	TenantsByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*entity.TenantSummary, error)
	CountTenantsByLandlord(ctx context.Context, landlordID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingDetailSelect = `
		SELECT b.id, b.reference, b.tenant_id, b.guest_name, b.guest_email, b.guest_phone,
		       b.property_id, b.room_id, b.check_in, b.check_out, b.amount, b.status,
		       b.payment_status, b.cancellation_reason, b.refund_amount, b.notes,
		       b.created_at, b.updated_at,
		       p.name, r.room_number, p.landlord_id
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		JOIN rooms r ON r.id = b.room_id`

func scanBookingDetail(row pgx.Row) (*entity.BookingDetail, error) {
	var b entity.BookingDetail
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.TenantID,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.PropertyID,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Amount,
		&b.Status,
		&b.PaymentStatus,
		&b.CancellationReason,
		&b.RefundAmount,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.PropertyName,
		&b.RoomNumber,
		&b.LandlordID,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func bookingConditions(filter entity.BookingFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(" WHERE 1=1")

	args := []any{}
	argCount := 1

	if filter.LandlordID != nil {
		sb.WriteString(fmt.Sprintf(" AND p.landlord_id = $%d", argCount))
		args = append(args, *filter.LandlordID)
		argCount++
	}
	if filter.TenantID != nil {
		sb.WriteString(fmt.Sprintf(" AND b.tenant_id = $%d", argCount))
		args = append(args, *filter.TenantID)
		argCount++
	}
	if filter.PropertyID != nil {
		sb.WriteString(fmt.Sprintf(" AND b.property_id = $%d", argCount))
		args = append(args, *filter.PropertyID)
		argCount++
	}
	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND b.status = $%d", argCount))
		args = append(args, filter.Status)
		argCount++
	}
	if filter.PaymentStatus != "" {
		sb.WriteString(fmt.Sprintf(" AND b.payment_status = $%d", argCount))
		args = append(args, filter.PaymentStatus)
		argCount++
	}
	if filter.Search != "" {
		sb.WriteString(fmt.Sprintf(" AND (b.guest_name ILIKE $%d OR b.guest_email ILIKE $%d OR b.reference ILIKE $%d)",
			argCount, argCount, argCount))
		args = append(args, "%"+filter.Search+"%")
	}

	return sb.String(), args
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, tenant_id, guest_name, guest_email, guest_phone,
		                      property_id, room_id, check_in, check_out, amount, status,
		                      payment_status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.TenantID,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.PropertyID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Amount,
		booking.Status,
		booking.PaymentStatus,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	query := bookingDetailSelect + ` WHERE b.id = $1`

	booking, err := scanBookingDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.BookingDetail, error) {
	conditions, args := bookingConditions(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(bookingDetailSelect)
	queryBuilder.WriteString(conditions)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var bookings []*entity.BookingDetail
	for rows.Next() {
		booking, err := scanBookingDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	conditions, args := bookingConditions(filter)
	query := `SELECT COUNT(*) FROM bookings b JOIN properties p ON p.id = b.property_id` + conditions

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return total, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update booking status %s: %w", id.String(), err)
	}

	return result.RowsAffected() == 1, nil
}

// Cancel marks the booking cancelled and, when refund is positive, flags it
// refunded and writes the refund ledger row in the same transaction.
func (r *bookingRepository) Cancel(ctx context.Context, id uuid.UUID, from domain.BookingStatus, reason string, refund float64, ledger *entity.Payment) (bool, error) {
	var refundAmount *float64
	if refund > 0 {
		refundAmount = &refund
	}

	applied := false
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE bookings
			SET status = 'cancelled',
			    cancellation_reason = $3,
			    refund_amount = $4,
			    payment_status = CASE WHEN $4::numeric IS NOT NULL THEN 'refunded' ELSE payment_status END,
			    updated_at = NOW()
			WHERE id = $1 AND status = $2
		`
		result, err := tx.Exec(ctx, query, id, from, reason, refundAmount)
		if err != nil {
			return fmt.Errorf("cancel booking %s: %w", id.String(), err)
		}
		if result.RowsAffected() == 0 {
			return nil
		}
		applied = true

		if ledger == nil {
			return nil
		}
		return insertPayment(ctx, tx, ledger)
	})
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, err
	}

	return applied, nil
}

func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus, ledger *entity.Payment) (bool, error) {
	applied := false
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE bookings
			SET payment_status = $2, updated_at = NOW()
			WHERE id = $1 AND status <> 'cancelled'
		`
		result, err := tx.Exec(ctx, query, id, status)
		if err != nil {
			return fmt.Errorf("update payment status %s: %w", id.String(), err)
		}
		if result.RowsAffected() == 0 {
			return nil
		}
		applied = true

		if ledger == nil {
			return nil
		}
		return insertPayment(ctx, tx, ledger)
	})
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("payment_status", string(status)),
		)
		return false, err
	}

	return applied, nil
}

// CountOverlapping counts the open bookings on the room whose stay
// intersects [checkIn, checkOut).
func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE room_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND check_in < $3
		  AND check_out > $2
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&total); err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("check overlap for room %s: %w", roomID.String(), err)
	}

	return total, nil
}

func (r *bookingRepository) CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1 AND status IN ('pending', 'confirmed')`

	var total int64
	if err := r.db.QueryRow(ctx, query, roomID).Scan(&total); err != nil {
		r.log.Error("Failed to count active room bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count active bookings for room %s: %w", roomID.String(), err)
	}

	return total, nil
}

func (r *bookingRepository) CountActiveByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE property_id = $1 AND status IN ('pending', 'confirmed')`

	var total int64
	if err := r.db.QueryRow(ctx, query, propertyID).Scan(&total); err != nil {
		r.log.Error("Failed to count active property bookings",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return 0, fmt.Errorf("count active bookings for property %s: %w", propertyID.String(), err)
	}

	return total, nil
}

func (r *bookingRepository) StatsByLandlord(ctx context.Context, landlordID uuid.UUID) (*entity.BookingStats, error) {
	query := `
		SELECT COUNT(b.id),
		       COUNT(b.id) FILTER (WHERE b.status = 'pending'),
		       COUNT(b.id) FILTER (WHERE b.status = 'confirmed'),
		       COUNT(b.id) FILTER (WHERE b.status = 'completed'),
		       COUNT(b.id) FILTER (WHERE b.status = 'partial-completed'),
		       COUNT(b.id) FILTER (WHERE b.status = 'cancelled'),
		       COALESCE(SUM(b.amount) FILTER (WHERE b.payment_status = 'paid'), 0)::float8,
		       COALESCE(SUM(b.refund_amount), 0)::float8
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE p.landlord_id = $1
	`

	var stats entity.BookingStats
	err := r.db.QueryRow(ctx, query, landlordID).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Confirmed,
		&stats.Completed,
		&stats.PartialCompleted,
		&stats.Cancelled,
		&stats.Revenue,
		&stats.Refunded,
	)
	if err != nil {
		r.log.Error("Failed to load booking stats",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()),
		)
		return nil, fmt.Errorf("booking stats for landlord %s: %w", landlordID.String(), err)
	}

	return &stats, nil
}

// tenantKey identifies a guest: the tenant account when there is one, else
// the guest email, else the booking itself for walk-ins with no contact.
const tenantKey = `COALESCE(b.tenant_id::text, NULLIF(LOWER(b.guest_email), ''), b.id::text)`

// TenantsByLandlord lists guests holding at least one pending or confirmed
// booking with the landlord. Counts and spend cover their full history.
func (r *bookingRepository) TenantsByLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*entity.TenantSummary, error) {
	query := `
		SELECT (ARRAY_AGG(b.tenant_id ORDER BY b.created_at DESC))[1],
		       (ARRAY_AGG(b.guest_name ORDER BY b.created_at DESC))[1],
		       MAX(LOWER(b.guest_email)), MAX(b.guest_phone),
		       COUNT(b.id),
		       COUNT(b.id) FILTER (WHERE b.status IN ('pending', 'confirmed')),
		       COALESCE(SUM(b.amount) FILTER (WHERE b.payment_status = 'paid'), 0)::float8,
		       MAX(b.check_in)
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE p.landlord_id = $1
		GROUP BY ` + tenantKey + `
		HAVING COUNT(b.id) FILTER (WHERE b.status IN ('pending', 'confirmed')) > 0
		ORDER BY MAX(b.check_in) DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, landlordID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list tenants",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()),
		)
		return nil, fmt.Errorf("list tenants for landlord %s: %w", landlordID.String(), err)
	}
	defer rows.Close()

	var tenants []*entity.TenantSummary
	for rows.Next() {
		var t entity.TenantSummary
		err := rows.Scan(
			&t.TenantID,
			&t.Name,
			&t.Email,
			&t.Phone,
			&t.BookingCount,
			&t.ActiveBookings,
			&t.TotalSpent,
			&t.LastCheckIn,
		)
		if err != nil {
			r.log.Error("Failed to scan tenant row", zap.Error(err))
			return nil, fmt.Errorf("scan tenant row: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate tenant rows: %w", err)
	}

	return tenants, nil
}

func (r *bookingRepository) CountTenantsByLandlord(ctx context.Context, landlordID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT 1
			FROM bookings b
			JOIN properties p ON p.id = b.property_id
			WHERE p.landlord_id = $1
			GROUP BY ` + tenantKey + `
			HAVING COUNT(b.id) FILTER (WHERE b.status IN ('pending', 'confirmed')) > 0
		) t
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, landlordID).Scan(&total); err != nil {
		r.log.Error("Failed to count tenants",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()),
		)
		return 0, fmt.Errorf("count tenants for landlord %s: %w", landlordID.String(), err)
	}

	return total, nil
}
