package entity

import (
	"github.com/google/uuid"
)

type PaymentKind string

const (
	PaymentKindPayment PaymentKind = "payment"
	PaymentKindRefund  PaymentKind = "refund"
)

// Payment is one ledger row written whenever money moves on a booking.
type Payment struct {
	BaseSimple
	BookingID  uuid.UUID   `db:"booking_id"`
	Kind       PaymentKind `db:"kind"`
	Status     string      `db:"status"`
	Amount     float64     `db:"amount"`
	Note       string      `db:"note"`
	RecordedBy *uuid.UUID  `db:"recorded_by"`
}

// PaymentDetail is a ledger row with its booking context for tenant history.
type PaymentDetail struct {
	Payment
	Reference    string `db:"reference"`
	PropertyName string `db:"property_name"`
	RoomNumber   string `db:"room_number"`
}
