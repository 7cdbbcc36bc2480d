package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dorm-rental/pkg/domain"
)

const dateLayout = "2006-01-02"

// BookingService drives the booking lifecycle. Every mutation is checked
// against the booking the caller holds before anything is sent, so an
// action the lifecycle forbids never reaches the server.
type BookingService struct {
	c *Client
}

type NewBooking struct {
	PropertyID string
	RoomID     string
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    time.Time
	CheckOut   time.Time
	Amount     *float64
	Notes      string
}

func (b NewBooking) payload() map[string]any {
	body := map[string]any{
		"property_id": b.PropertyID,
		"room_id":     b.RoomID,
		"guest_name":  strings.TrimSpace(b.GuestName),
		"guest_email": strings.TrimSpace(b.GuestEmail),
		"guest_phone": strings.TrimSpace(b.GuestPhone),
		"check_in":    b.CheckIn.Format(dateLayout),
		"check_out":   b.CheckOut.Format(dateLayout),
		"notes":       b.Notes,
	}
	if b.Amount != nil {
		body["amount"] = *b.Amount
	}
	return body
}

type BookingFilter struct {
	PageQuery
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
	PropertyID    string
	Search        string
}

func (f BookingFilter) values() url.Values {
	v := f.PageQuery.values()
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.PaymentStatus != "" {
		v.Set("payment_status", string(f.PaymentStatus))
	}
	if f.PropertyID != "" {
		v.Set("property_id", f.PropertyID)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	return v
}

// Create records a booking for a guest on behalf of the landlord.
func (s *BookingService) Create(ctx context.Context, b NewBooking) Result[Booking] {
	if strings.TrimSpace(b.GuestName) == "" {
		return invalid[Booking]("Guest name is required.")
	}
	if err := domain.ValidateStay(b.CheckIn, b.CheckOut); err != nil {
		return invalid[Booking](err.Error())
	}
	return callJSON[Booking](ctx, s.c, http.MethodPost, "/landlord/bookings", b.payload())
}

// Request asks for a booking as the signed-in tenant.
func (s *BookingService) Request(ctx context.Context, b NewBooking) Result[Booking] {
	if err := domain.ValidateStay(b.CheckIn, b.CheckOut); err != nil {
		return invalid[Booking](err.Error())
	}
	return callJSON[Booking](ctx, s.c, http.MethodPost, "/bookings", b.payload())
}

func (s *BookingService) List(ctx context.Context, filter BookingFilter) Result[Page[Booking]] {
	return get[Page[Booking]](ctx, s.c, "/landlord/bookings", filter.values())
}

func (s *BookingService) Get(ctx context.Context, id string) Result[BookingDetail] {
	return get[BookingDetail](ctx, s.c, pathID("/bookings/%s", id), nil)
}

func (s *BookingService) Confirm(ctx context.Context, b Booking) Result[Booking] {
	return s.transition(ctx, b, domain.BookingStatusConfirmed, nil)
}

func (s *BookingService) Complete(ctx context.Context, b Booking) Result[Booking] {
	return s.transition(ctx, b, domain.BookingStatusCompleted, nil)
}

// PartialComplete closes a confirmed stay that ended early.
func (s *BookingService) PartialComplete(ctx context.Context, b Booking) Result[Booking] {
	return s.transition(ctx, b, domain.BookingStatusPartialCompleted, nil)
}

// Cancel requires a reason. With ShouldRefund and no amount the refund is
// the full booking amount.
func (s *BookingService) Cancel(ctx context.Context, b Booking, c domain.Cancellation) Result[Booking] {
	if !domain.CanCancel(b.Status) {
		return invalid[Booking](fmt.Sprintf("cannot cancel a %s booking", b.Status))
	}
	refund, err := c.ResolveRefund(b.Amount)
	if err != nil {
		return invalid[Booking](err.Error())
	}

	body := map[string]any{
		"reason":        strings.TrimSpace(c.Reason),
		"should_refund": c.ShouldRefund,
	}
	if refund > 0 {
		body["refund_amount"] = refund
	}
	return s.transition(ctx, b, domain.BookingStatusCancelled, body)
}

func (s *BookingService) transition(ctx context.Context, b Booking, to domain.BookingStatus, body map[string]any) Result[Booking] {
	if !domain.CanTransition(b.Status, to) {
		return invalid[Booking](fmt.Sprintf("cannot change booking status from %s to %s", b.Status, to))
	}
	if body == nil {
		body = map[string]any{}
	}
	body["status"] = to
	return callJSON[Booking](ctx, s.c, http.MethodPatch, pathID("/bookings/%s/status", b.ID), body)
}

// UpdatePaymentStatus is refused once the booking is cancelled. Amount is
// required for a partial payment.
func (s *BookingService) UpdatePaymentStatus(ctx context.Context, b Booking, status domain.PaymentStatus, amount *float64, note string) Result[Booking] {
	if !domain.CanUpdatePayment(b.Status) {
		return invalid[Booking](fmt.Sprintf("cannot update payment of a %s booking", b.Status))
	}
	if _, err := domain.ParsePaymentStatus(string(status)); err != nil {
		return invalid[Booking](err.Error())
	}
	if status == domain.PaymentStatusPartial && (amount == nil || *amount <= 0) {
		return invalid[Booking]("amount: is required for a partial payment")
	}

	body := map[string]any{"payment_status": status, "note": note}
	if amount != nil {
		body["amount"] = *amount
	}
	return callJSON[Booking](ctx, s.c, http.MethodPatch, pathID("/bookings/%s/payment", b.ID), body)
}

// Export downloads the landlord's bookings as an XLSX workbook.
func (s *BookingService) Export(ctx context.Context, filter BookingFilter) Result[[]byte] {
	status, raw, header, err := s.c.send(ctx, request{
		method: http.MethodGet,
		path:   "/landlord/bookings/export",
		query:  filter.values(),
	})
	if err != nil {
		return fail[[]byte](KindNetwork, status, networkMessage(err))
	}
	if status != http.StatusOK || strings.HasPrefix(header.Get("Content-Type"), "application/json") {
		return decode[[]byte](status, raw)
	}
	return Result[[]byte]{Success: true, Data: raw, StatusCode: status}
}
