package adaptor

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingHandler struct {
	service usecase.BookingService
	export  usecase.ExportService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, export usecase.ExportService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		export:  export,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// bookingStatusView is returned by GET /bookings/{id}/status.
type bookingStatusView struct {
	ID               string                 `json:"id"`
	Status           domain.BookingStatus   `json:"status"`
	PaymentStatus    domain.PaymentStatus   `json:"payment_status"`
	NextStatuses     []domain.BookingStatus `json:"next_statuses"`
	CanUpdatePayment bool                   `json:"can_update_payment"`
}

// CreateLandlordBooking handles POST /landlord/bookings (protected)
func (h *BookingHandler) CreateLandlordBooking(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.CreateLandlordBooking(r.Context(), landlordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// CreateTenantBooking handles POST /bookings (protected)
func (h *BookingHandler) CreateTenantBooking(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.CreateTenantBooking(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "request booking")
		return
	}

	utils.ResponseCreated(w, "Booking requested", booking)
}

// ListLandlordBookings handles GET /landlord/bookings (protected)
func (h *BookingHandler) ListLandlordBookings(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := bookingListFromQuery(r)
	bookings, err := h.service.ListLandlordBookings(r.Context(), landlordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ExportBookings handles GET /landlord/bookings/export (protected)
func (h *BookingHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := bookingListFromQuery(r)
	buf, err := h.export.ExportBookings(r.Context(), landlordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "export bookings")
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("Failed to write export", zap.Error(err))
	}
}

// GetBooking handles GET /bookings/{id} (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	booking, err := h.service.GetBooking(r.Context(), userID, role, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingStatus handles GET /bookings/{id}/status (protected)
func (h *BookingHandler) GetBookingStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	booking, err := h.service.GetBooking(r.Context(), userID, role, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking status")
		return
	}

	utils.ResponseSuccess(w, "success", bookingStatusView{
		ID:               booking.ID,
		Status:           booking.Status,
		PaymentStatus:    booking.PaymentStatus,
		NextStatuses:     booking.NextStatuses,
		CanUpdatePayment: booking.CanUpdatePayment,
	})
}

// UpdateStatus handles PATCH /bookings/{id}/status (protected)
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateBookingStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), landlordID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking "+string(booking.Status), booking)
}

// UpdatePaymentStatus handles PATCH /bookings/{id}/payment (protected)
func (h *BookingHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdatePaymentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.UpdatePaymentStatus(r.Context(), landlordID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "Payment status updated", booking)
}

func bookingListFromQuery(r *http.Request) request.BookingListRequest {
	query := r.URL.Query()
	return request.BookingListRequest{
		PaginatedRequest: paginationFromQuery(r),
		Status:           query.Get("status"),
		PaymentStatus:    query.Get("payment_status"),
		PropertyID:       query.Get("property_id"),
		Search:           query.Get("search"),
	}
}
