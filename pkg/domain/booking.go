package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending          BookingStatus = "pending"
	BookingStatusConfirmed        BookingStatus = "confirmed"
	BookingStatusCompleted        BookingStatus = "completed"
	BookingStatusPartialCompleted BookingStatus = "partial-completed"
	BookingStatusCancelled        BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var (
	ErrCheckOutBeforeCheckIn = errors.New("Check-out date must be after check-in date.")
	ErrCancelReasonRequired  = errors.New("cancellation reason is required")
	ErrInvalidRefundAmount   = errors.New("invalid refund amount")
)

// bookingTransitions is the only place the lifecycle is defined.
// partial-completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:          {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:        {BookingStatusCompleted, BookingStatusPartialCompleted, BookingStatusCancelled},
	BookingStatusCompleted:        {BookingStatusCancelled},
	BookingStatusPartialCompleted: {},
	BookingStatusCancelled:        {},
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.TrimSpace(s))
	if _, ok := bookingTransitions[status]; !ok {
		return "", fmt.Errorf("invalid booking status: %q", s)
	}
	return status, nil
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// CanTransition checks a booking status change against the lifecycle table.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in table order.
func NextStatuses(s BookingStatus) []BookingStatus {
	next := bookingTransitions[s]
	out := make([]BookingStatus, len(next))
	copy(out, next)
	return out
}

func CanConfirm(s BookingStatus) bool { return CanTransition(s, BookingStatusConfirmed) }

func CanComplete(s BookingStatus) bool { return CanTransition(s, BookingStatusCompleted) }

func CanCancel(s BookingStatus) bool { return CanTransition(s, BookingStatusCancelled) }

// CanUpdatePayment reports whether the payment status of a booking in
// status s may still be edited.
func CanUpdatePayment(s BookingStatus) bool {
	return s.Valid() && s != BookingStatusCancelled
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(strings.TrimSpace(s)); p {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return p, nil
	default:
		return "", fmt.Errorf("invalid payment status: %q", s)
	}
}

// ValidateStay requires check-out strictly after check-in.
func ValidateStay(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrCheckOutBeforeCheckIn
	}
	return nil
}

// Nights counts whole nights between check-in and check-out, rounding up
// partial days.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	d := checkOut.Sub(checkIn)
	n := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		n++
	}
	return n
}

// Cancellation is the input of a cancel operation.
type Cancellation struct {
	Reason       string
	ShouldRefund bool
	RefundAmount *float64
}

// ResolveRefund validates a cancellation against the booking amount and
// returns the refund to apply. A refund requested without an explicit
// amount defaults to the full booking amount, so a free booking refunds
// nothing.
func (c Cancellation) ResolveRefund(bookingAmount float64) (float64, error) {
	if strings.TrimSpace(c.Reason) == "" {
		return 0, ErrCancelReasonRequired
	}
	if !c.ShouldRefund {
		return 0, nil
	}
	if c.RefundAmount == nil && bookingAmount == 0 {
		return 0, nil
	}

	amount := bookingAmount
	if c.RefundAmount != nil {
		amount = *c.RefundAmount
	}
	if amount <= 0 || amount > bookingAmount {
		return 0, fmt.Errorf("%w: %.2f (booking amount %.2f)", ErrInvalidRefundAmount, amount, bookingAmount)
	}
	return amount, nil
}

// DefaultAmount prices a stay from room rates: the daily rate per night
// when set, otherwise the monthly rate per started 30-day block.
func DefaultAmount(dailyRate, monthlyRate float64, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	if dailyRate > 0 {
		return dailyRate * float64(nights)
	}
	months := (nights + 29) / 30
	return monthlyRate * float64(months)
}
