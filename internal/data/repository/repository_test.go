package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/pkg/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestBookingTransitionStatusIsCompareAndSet(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec(`UPDATE bookings SET status = \$3`).
		WithArgs(id, domain.BookingStatusPending, domain.BookingStatusConfirmed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE bookings SET status = \$3`).
		WithArgs(id, domain.BookingStatusPending, domain.BookingStatusConfirmed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.TransitionStatus(context.Background(), id, domain.BookingStatusPending, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TransitionStatus(context.Background(), id, domain.BookingStatusPending, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.False(t, ok, "second confirm must not apply")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCancelWritesRefundLedgerInTx(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())
	id := uuid.New()
	ledger := &entity.Payment{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		BookingID:  id,
		Kind:       entity.PaymentKindRefund,
		Status:     string(domain.PaymentStatusRefunded),
		Amount:     500,
		Note:       "guest left early",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(id, domain.BookingStatusConfirmed, "guest left early", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO payments`).
		WithArgs(ledger.ID, id, entity.PaymentKindRefund, ledger.Status, 500.0, ledger.Note, ledger.RecordedBy, ledger.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	ok, err := repo.Cancel(context.Background(), id, domain.BookingStatusConfirmed, "guest left early", 500, ledger)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCancelSkipsLedgerWhenStatusMoved(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bookings`).
		WithArgs(id, domain.BookingStatusPending, "changed plans", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectCommit()

	ok, err := repo.Cancel(context.Background(), id, domain.BookingStatusPending, "changed plans", 0, &entity.Payment{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCancelRollsBackOnLedgerFailure(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bookings`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO payments`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), id, domain.BookingStatusConfirmed, "x", 10, &entity.Payment{BookingID: id, Kind: entity.PaymentKindRefund})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCountOverlapping(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())
	roomID := uuid.New()
	in := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 3)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings\s+WHERE room_id = \$1`).
		WithArgs(roomID, in, out).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(2)))

	overlapping, err := repo.CountOverlapping(context.Background(), roomID, in, out)
	require.NoError(t, err)
	assert.Equal(t, int64(2), overlapping)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingConditions(t *testing.T) {
	landlord := uuid.New()
	clause, args := bookingConditions(entity.BookingFilter{
		LandlordID: &landlord,
		Status:     domain.BookingStatusPending,
		Search:     "ana",
	})

	assert.Contains(t, clause, "p.landlord_id = $1")
	assert.Contains(t, clause, "b.status = $2")
	assert.Contains(t, clause, "b.guest_name ILIKE $3")
	assert.Equal(t, []any{landlord, domain.BookingStatusPending, "%ana%"}, args)
}

func TestSessionFindValidSessionRejectsMalformedToken(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock, zap.NewNop())

	session, err := repo.FindValidSession(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishedConditions(t *testing.T) {
	clause, args := publishedConditions(entity.PropertyFilter{
		City:         "Baguio",
		PropertyType: domain.PropertyTypeDormitory,
	})

	assert.Contains(t, clause, "p.status = 'published'")
	assert.Contains(t, clause, "p.city ILIKE $1")
	assert.Contains(t, clause, "p.property_type = $2")
	assert.Equal(t, []any{"%Baguio%", domain.PropertyTypeDormitory}, args)
}

func TestReportResolveOnlyPending(t *testing.T) {
	mock := newMock(t)
	repo := NewReportRepository(mock, zap.NewNop())
	id, admin := uuid.New(), uuid.New()
	at := time.Now()

	mock.ExpectExec(`UPDATE reports`).
		WithArgs(id, domain.ReportStatusResolved, "handled", admin, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.Resolve(context.Background(), id, domain.ReportStatusResolved, "handled", admin, at)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingTenantsByLandlordGroupsByIdentity(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())
	landlordID := uuid.New()
	tenantID := uuid.New()
	lastCheckIn := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`GROUP BY COALESCE\(b\.tenant_id::text, NULLIF\(LOWER\(b\.guest_email\), ''\), b\.id::text\)\s+HAVING COUNT\(b\.id\) FILTER \(WHERE b\.status IN \('pending', 'confirmed'\)\) > 0`).
		WithArgs(landlordID, 10, 0).
		WillReturnRows(mock.NewRows([]string{
			"tenant_id", "guest_name", "guest_email", "guest_phone",
			"booking_count", "active_bookings", "total_spent", "last_check_in",
		}).AddRow(&tenantID, "Maria Santos", "maria@example.com", "0917", int64(3), int64(1), 4500.0, lastCheckIn))

	tenants, err := repo.TenantsByLandlord(context.Background(), landlordID, 10, 0)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	require.NotNil(t, tenants[0].TenantID)
	assert.Equal(t, tenantID, *tenants[0].TenantID)
	assert.Equal(t, int64(1), tenants[0].ActiveBookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCountTenantsByLandlordCountsActiveGroups(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())
	landlordID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM \(\s+SELECT 1[\s\S]+GROUP BY COALESCE\(b\.tenant_id::text[\s\S]+HAVING`).
		WithArgs(landlordID).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(4)))

	total, err := repo.CountTenantsByLandlord(context.Background(), landlordID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
