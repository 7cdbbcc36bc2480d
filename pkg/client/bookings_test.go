package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"dorm-rental/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCancelRequiresReasonBeforeRequest(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "ok", nil, nil)
	})
	b := Booking{ID: "b1", Status: domain.BookingStatusConfirmed, Amount: 3000}

	res := c.Bookings.Cancel(context.Background(), b, domain.Cancellation{Reason: "   "})

	assert.False(t, res.Success)
	assert.Equal(t, KindValidation, res.Kind)
	assert.Zero(t, hits.Load())
}

func TestCancelWithRefundDefaultsToBookingAmount(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bookings/b1/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeEnvelope(w, http.StatusOK, "Booking cancelled", map[string]any{
			"id": "b1", "status": "cancelled", "payment_status": "refunded", "refund_amount": 3000,
		}, nil)
	})
	b := Booking{ID: "b1", Status: domain.BookingStatusConfirmed, Amount: 3000}

	res := c.Bookings.Cancel(context.Background(), b, domain.Cancellation{Reason: "Guest moved out", ShouldRefund: true})

	require.True(t, res.Success, res.Error)
	assert.Equal(t, "cancelled", body["status"])
	assert.Equal(t, "Guest moved out", body["reason"])
	assert.Equal(t, true, body["should_refund"])
	assert.Equal(t, 3000.0, body["refund_amount"])
	assert.Equal(t, domain.PaymentStatusRefunded, res.Data.PaymentStatus)
}

func TestCancelFreeBookingOmitsRefundAmount(t *testing.T) {
	var body map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeEnvelope(w, http.StatusOK, "Booking cancelled", map[string]any{
			"id": "b1", "status": "cancelled", "payment_status": "unpaid",
		}, nil)
	})
	b := Booking{ID: "b1", Status: domain.BookingStatusConfirmed, Amount: 0}

	res := c.Bookings.Cancel(context.Background(), b, domain.Cancellation{Reason: "Promo withdrawn", ShouldRefund: true})

	require.True(t, res.Success, res.Error)
	assert.NotContains(t, body, "refund_amount")
}

func TestCancelRejectsRefundAboveAmount(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	b := Booking{ID: "b1", Status: domain.BookingStatusCompleted, Amount: 1000}

	res := c.Bookings.Cancel(context.Background(), b, domain.Cancellation{Reason: "overcharged", ShouldRefund: true, RefundAmount: ptr(1500.0)})

	assert.Equal(t, KindValidation, res.Kind)
	assert.Zero(t, hits.Load())
}

func TestTransitionsGatedByLifecycle(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	assert.False(t, c.Bookings.Confirm(ctx, Booking{ID: "b", Status: domain.BookingStatusConfirmed}).Success)
	assert.False(t, c.Bookings.Complete(ctx, Booking{ID: "b", Status: domain.BookingStatusPending}).Success)
	assert.False(t, c.Bookings.PartialComplete(ctx, Booking{ID: "b", Status: domain.BookingStatusPending}).Success)
	assert.False(t, c.Bookings.Cancel(ctx, Booking{ID: "b", Status: domain.BookingStatusCancelled}, domain.Cancellation{Reason: "x"}).Success)
	assert.False(t, c.Bookings.UpdatePaymentStatus(ctx, Booking{ID: "b", Status: domain.BookingStatusCancelled}, domain.PaymentStatusPaid, nil, "").Success)
	assert.Zero(t, hits.Load())
}

func TestConfirmPendingBooking(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "confirmed", body["status"])
		writeEnvelope(w, http.StatusOK, "Booking confirmed", map[string]any{"id": "b1", "status": "confirmed"}, nil)
	})

	res := c.Bookings.Confirm(context.Background(), Booking{ID: "b1", Status: domain.BookingStatusPending})

	require.True(t, res.Success, res.Error)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Data.Status)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCreateRejectsCheckOutBeforeCheckIn(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	res := c.Bookings.Create(context.Background(), NewBooking{
		GuestName: "Ana",
		CheckIn:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, KindValidation, res.Kind)
	assert.Equal(t, "Check-out date must be after check-in date.", res.Error)
	assert.Zero(t, hits.Load())
}

func TestCreateSendsDates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "/landlord/bookings", r.URL.Path)
		assert.Equal(t, "2024-06-01", body["check_in"])
		assert.Equal(t, "2024-06-04", body["check_out"])
		assert.NotContains(t, body, "amount")
		writeEnvelope(w, http.StatusCreated, "Booking created", map[string]any{"id": "b9", "status": "pending", "nights": 3}, nil)
	})

	res := c.Bookings.Create(context.Background(), NewBooking{
		PropertyID: "p1",
		RoomID:     "r1",
		GuestName:  "Ana",
		CheckIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
	})

	require.True(t, res.Success, res.Error)
	assert.Equal(t, 3, res.Data.Nights)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestPartialPaymentNeedsAmount(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	res := c.Bookings.UpdatePaymentStatus(context.Background(), Booking{ID: "b", Status: domain.BookingStatusConfirmed}, domain.PaymentStatusPartial, nil, "")

	assert.Equal(t, KindValidation, res.Kind)
	assert.Zero(t, hits.Load())
}

func TestExportReturnsWorkbookBytes(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cancelled", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Write([]byte("PK\x03\x04"))
	})

	res := c.Bookings.Export(context.Background(), BookingFilter{Status: domain.BookingStatusCancelled})

	require.True(t, res.Success, res.Error)
	assert.Equal(t, []byte("PK\x03\x04"), res.Data)
}
