package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dorm-rental/internal/data/entity"
	"dorm-rental/internal/data/repository"
	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/dto/response"
	"dorm-rental/pkg/cache"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/metrics"
	"dorm-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const bookingDateLayout = "2006-01-02"

type BookingService interface {
	// Landlord
	CreateLandlordBooking(ctx context.Context, landlordID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListLandlordBookings(ctx context.Context, landlordID uuid.UUID, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, landlordID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, landlordID uuid.UUID, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error)

	// Tenant
	CreateTenantBooking(ctx context.Context, tenantID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Landlord owner, tenant owner or admin
	GetBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingDetailResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	cache cache.Cache
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, cache cache.Cache, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "booking")),
	}
}

// stay is a validated booking request resolved against its property and room.
type stay struct {
	property *entity.Property
	room     *entity.Room
	checkIn  time.Time
	checkOut time.Time
	amount   float64
}

func (s *bookingService) resolveStay(ctx context.Context, req *request.CreateBookingRequest) (*stay, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	checkIn, err := time.Parse(bookingDateLayout, req.CheckIn)
	if err != nil {
		return nil, utils.NewValidationError("check_in", "must be a date in YYYY-MM-DD format")
	}
	checkOut, err := time.Parse(bookingDateLayout, req.CheckOut)
	if err != nil {
		return nil, utils.NewValidationError("check_out", "must be a date in YYYY-MM-DD format")
	}
	if err := domain.ValidateStay(checkIn, checkOut); err != nil {
		return nil, utils.NewValidationError("check_out", err.Error())
	}

	propertyID, err := parseID("property", req.PropertyID)
	if err != nil {
		return nil, err
	}
	roomID, err := parseID("room", req.RoomID)
	if err != nil {
		return nil, err
	}

	property, err := s.repo.Property.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if property == nil {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if room == nil || room.PropertyID != propertyID {
		return nil, fmt.Errorf("room %s not found in property %s", req.RoomID, req.PropertyID)
	}
	if room.Status == domain.RoomStatusMaintenance {
		return nil, fmt.Errorf("cannot book room %s: under maintenance", room.RoomNumber)
	}

	overlapping, err := s.repo.Booking.CountOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if overlapping >= int64(domain.ConcurrentStays(room.PricingModel, room.Capacity)) {
		return nil, fmt.Errorf("room %s is already booked for the selected dates", room.RoomNumber)
	}

	amount := domain.DefaultAmount(room.DailyRate, room.MonthlyRate, domain.Nights(checkIn, checkOut))
	if req.Amount != nil {
		amount = *req.Amount
	}

	return &stay{
		property: property,
		room:     room,
		checkIn:  checkIn,
		checkOut: checkOut,
		amount:   amount,
	}, nil
}

func (s *bookingService) create(ctx context.Context, st *stay, tenantID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:     utils.GenerateReference(now),
		TenantID:      tenantID,
		GuestName:     strings.TrimSpace(req.GuestName),
		GuestEmail:    strings.TrimSpace(req.GuestEmail),
		GuestPhone:    strings.TrimSpace(req.GuestPhone),
		PropertyID:    st.property.ID,
		RoomID:        st.room.ID,
		CheckIn:       st.checkIn,
		CheckOut:      st.checkOut,
		Amount:        st.amount,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
		Notes:         strings.TrimSpace(req.Notes),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.invalidateDashboard(ctx, st.property.LandlordID)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("room_id", st.room.ID.String()),
		zap.Float64("amount", booking.Amount))

	resp := response.BookingToResponse(&entity.BookingDetail{
		Booking:      *booking,
		PropertyName: st.property.Name,
		RoomNumber:   st.room.RoomNumber,
		LandlordID:   st.property.LandlordID,
	})
	return &resp, nil
}

func (s *bookingService) CreateLandlordBooking(ctx context.Context, landlordID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if strings.TrimSpace(req.GuestName) == "" {
		return nil, utils.NewValidationError("guest_name", "This field is required")
	}

	st, err := s.resolveStay(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := ownedProperty(st.property, landlordID, req.PropertyID); err != nil {
		return nil, err
	}

	return s.create(ctx, st, nil, req)
}

func (s *bookingService) CreateTenantBooking(ctx context.Context, tenantID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	st, err := s.resolveStay(ctx, req)
	if err != nil {
		return nil, err
	}
	if st.property.Status != entity.PropertyStatusPublished {
		return nil, fmt.Errorf("property %s not found", req.PropertyID)
	}

	// guest contact defaults to the tenant's own profile
	if req.GuestName == "" || req.GuestEmail == "" {
		user, err := s.repo.User.FindByID(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("create booking: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("user %s not found", tenantID)
		}
		if req.GuestName == "" {
			req.GuestName = user.Name
		}
		if req.GuestEmail == "" {
			req.GuestEmail = user.Email
		}
		if req.GuestPhone == "" && user.Phone != nil {
			req.GuestPhone = *user.Phone
		}
	}

	return s.create(ctx, st, &tenantID, req)
}

func (s *bookingService) ListLandlordBookings(ctx context.Context, landlordID uuid.UUID, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	normalizePage(&req.PaginatedRequest)
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	filter := entity.BookingFilter{
		LandlordID:    &landlordID,
		Status:        domain.BookingStatus(req.Status),
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
		Search:        strings.TrimSpace(req.Search),
	}
	if req.PropertyID != "" {
		propertyID, err := parseID("property", req.PropertyID)
		if err != nil {
			return nil, err
		}
		filter.PropertyID = &propertyID
	}

	bookings, err := s.repo.Booking.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, role string, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	switch entity.UserRole(role) {
	case entity.RoleAdmin:
	case entity.RoleLandlord:
		if booking.LandlordID != userID {
			return nil, fmt.Errorf("forbidden: booking %s belongs to another landlord", bookingID)
		}
	default:
		if booking.TenantID == nil || *booking.TenantID != userID {
			return nil, fmt.Errorf("forbidden: booking %s belongs to another tenant", bookingID)
		}
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking payments: %w", err)
	}

	resp := &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking),
		Payments:        make([]response.PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, response.PaymentToResponse(p))
	}
	return resp, nil
}

// ownedBooking loads a booking and checks it sits on one of the landlord's properties.
func (s *bookingService) ownedBooking(ctx context.Context, landlordID uuid.UUID, bookingID string) (*entity.BookingDetail, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.LandlordID != landlordID {
		return nil, fmt.Errorf("forbidden: booking %s belongs to another landlord", bookingID)
	}
	return booking, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, landlordID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	to, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, err
	}

	booking, err := s.ownedBooking(ctx, landlordID, bookingID)
	if err != nil {
		return nil, err
	}

	from := booking.Status
	if !domain.CanTransition(from, to) {
		metrics.ObserveRejectedTransition(string(from), string(to))
		s.log.Warn("Booking transition rejected",
			zap.String("booking_id", bookingID),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
		return nil, fmt.Errorf("cannot change booking status from %s to %s", from, to)
	}

	var applied bool
	if to == domain.BookingStatusCancelled {
		applied, err = s.cancel(ctx, landlordID, booking, req)
	} else {
		applied, err = s.repo.Booking.TransitionStatus(ctx, booking.ID, from, to)
	}
	if err != nil {
		return nil, err
	}
	if !applied {
		metrics.ObserveRejectedTransition(string(from), string(to))
		return nil, fmt.Errorf("cannot change booking status to %s: booking is no longer %s", to, from)
	}

	metrics.ObserveTransition(string(from), string(to))
	s.invalidateDashboard(ctx, landlordID)

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	return s.reload(ctx, booking.ID)
}

func (s *bookingService) cancel(ctx context.Context, landlordID uuid.UUID, booking *entity.BookingDetail, req *request.UpdateBookingStatusRequest) (bool, error) {
	c := domain.Cancellation{
		Reason:       req.Reason,
		ShouldRefund: req.ShouldRefund,
		RefundAmount: req.RefundAmount,
	}
	refund, err := c.ResolveRefund(booking.Amount)
	switch {
	case errors.Is(err, domain.ErrCancelReasonRequired):
		return false, utils.NewValidationError("reason", "Cancellation reason is required")
	case errors.Is(err, domain.ErrInvalidRefundAmount):
		return false, utils.NewValidationError("refund_amount", fmt.Sprintf("must be greater than 0 and at most %.2f", booking.Amount))
	case err != nil:
		return false, err
	}

	reason := strings.TrimSpace(req.Reason)
	var ledger *entity.Payment
	if refund > 0 {
		ledger = &entity.Payment{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			BookingID:  booking.ID,
			Kind:       entity.PaymentKindRefund,
			Status:     string(domain.PaymentStatusRefunded),
			Amount:     refund,
			Note:       reason,
			RecordedBy: &landlordID,
		}
	}

	return s.repo.Booking.Cancel(ctx, booking.ID, booking.Status, reason, refund, ledger)
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, landlordID uuid.UUID, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	status, err := domain.ParsePaymentStatus(req.PaymentStatus)
	if err != nil {
		return nil, err
	}

	booking, err := s.ownedBooking(ctx, landlordID, bookingID)
	if err != nil {
		return nil, err
	}
	if !domain.CanUpdatePayment(booking.Status) {
		return nil, fmt.Errorf("cannot update payment of a %s booking", booking.Status)
	}

	var ledger *entity.Payment
	switch status {
	case domain.PaymentStatusPaid, domain.PaymentStatusPartial:
		amount := booking.Amount
		if req.Amount != nil {
			amount = *req.Amount
		} else if status == domain.PaymentStatusPartial {
			return nil, utils.NewValidationError("amount", "This field is required for partial payments")
		}
		ledger = &entity.Payment{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			BookingID:  booking.ID,
			Kind:       entity.PaymentKindPayment,
			Status:     string(status),
			Amount:     amount,
			Note:       strings.TrimSpace(req.Note),
			RecordedBy: &landlordID,
		}
	}

	applied, err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, status, ledger)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("cannot update payment: booking %s was cancelled", bookingID)
	}
	s.invalidateDashboard(ctx, landlordID)

	s.log.Info("Booking payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.PaymentStatus)),
		zap.String("to", string(status)))

	return s.reload(ctx, booking.ID)
}

func (s *bookingService) reload(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// invalidateDashboard drops the cached stats. A cache failure only delays
// freshness until the entry expires.
func (s *bookingService) invalidateDashboard(ctx context.Context, landlordID uuid.UUID) {
	if _, err := s.cache.Incr(ctx, cache.DashboardVersionKey(landlordID)); err != nil {
		s.log.Warn("Failed to invalidate dashboard cache",
			zap.Error(err),
			zap.String("landlord_id", landlordID.String()))
	}
}
