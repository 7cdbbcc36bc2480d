package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusPartialCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, true},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusPartialCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatus("bogus"), BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestGatingHelpers(t *testing.T) {
	assert.True(t, CanConfirm(BookingStatusPending))
	assert.False(t, CanConfirm(BookingStatusConfirmed))
	assert.True(t, CanComplete(BookingStatusConfirmed))
	assert.False(t, CanComplete(BookingStatusPending))
	assert.True(t, CanCancel(BookingStatusCompleted))
	assert.False(t, CanCancel(BookingStatusCancelled))

	assert.True(t, CanUpdatePayment(BookingStatusCompleted))
	assert.False(t, CanUpdatePayment(BookingStatusCancelled))
	assert.False(t, CanUpdatePayment(BookingStatus("")))
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusPartialCompleted.Terminal())
	assert.False(t, BookingStatusCompleted.Terminal())
	assert.Equal(t, []BookingStatus{BookingStatusConfirmed, BookingStatusCancelled}, NextStatuses(BookingStatusPending))
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseBookingStatus(" partial-completed ")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusPartialCompleted, s)

	_, err = ParseBookingStatus("expired")
	assert.Error(t, err)

	p, err := ParsePaymentStatus("refunded")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusRefunded, p)

	_, err = ParsePaymentStatus("completed")
	assert.Error(t, err)
}

func TestValidateStay(t *testing.T) {
	in := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	err := ValidateStay(in, out)
	require.Error(t, err)
	assert.Equal(t, "Check-out date must be after check-in date.", err.Error())

	assert.ErrorIs(t, ValidateStay(in, in), ErrCheckOutBeforeCheckIn)
	assert.NoError(t, ValidateStay(out, in))
}

func TestNights(t *testing.T) {
	in := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, Nights(in, in.AddDate(0, 0, 3)))
	assert.Equal(t, 1, Nights(in, in.Add(2*time.Hour)))
	assert.Equal(t, 0, Nights(in, in))
}

func TestResolveRefund(t *testing.T) {
	t.Run("defaults to booking amount", func(t *testing.T) {
		got, err := Cancellation{Reason: "guest left", ShouldRefund: true}.ResolveRefund(4500)
		require.NoError(t, err)
		assert.Equal(t, 4500.0, got)
	})

	t.Run("explicit amount", func(t *testing.T) {
		amount := 1000.0
		got, err := Cancellation{Reason: "partial", ShouldRefund: true, RefundAmount: &amount}.ResolveRefund(4500)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, got)
	})

	t.Run("no refund", func(t *testing.T) {
		got, err := Cancellation{Reason: "no show"}.ResolveRefund(4500)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("empty reason", func(t *testing.T) {
		_, err := Cancellation{Reason: "   ", ShouldRefund: true}.ResolveRefund(4500)
		assert.ErrorIs(t, err, ErrCancelReasonRequired)
	})

	t.Run("refund above amount", func(t *testing.T) {
		amount := 5000.0
		_, err := Cancellation{Reason: "x", ShouldRefund: true, RefundAmount: &amount}.ResolveRefund(4500)
		assert.ErrorIs(t, err, ErrInvalidRefundAmount)
	})

	t.Run("free booking refunds nothing", func(t *testing.T) {
		got, err := Cancellation{Reason: "x", ShouldRefund: true}.ResolveRefund(0)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("explicit refund on free booking", func(t *testing.T) {
		amount := 10.0
		_, err := Cancellation{Reason: "x", ShouldRefund: true, RefundAmount: &amount}.ResolveRefund(0)
		assert.ErrorIs(t, err, ErrInvalidRefundAmount)
	})
}
