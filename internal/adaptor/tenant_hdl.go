package adaptor

import (
	"net/http"

	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"go.uber.org/zap"
)

type TenantHandler struct {
	service usecase.TenantService
	log     *zap.Logger
}

func NewTenantHandler(service usecase.TenantService, log *zap.Logger) *TenantHandler {
	return &TenantHandler{
		service: service,
		log:     log.With(zap.String("handler", "tenant")),
	}
}

// ListLandlordTenants handles GET /landlord/tenants (protected)
func (h *TenantHandler) ListLandlordTenants(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := paginationFromQuery(r)
	tenants, err := h.service.ListLandlordTenants(r.Context(), landlordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list tenants")
		return
	}

	utils.ResponseSuccess(w, "success", tenants)
}

// ListTenantBookings handles GET /tenant/bookings (protected)
func (h *TenantHandler) ListTenantBookings(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := paginationFromQuery(r)
	bookings, err := h.service.ListTenantBookings(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list tenant bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ListTenantPayments handles GET /tenant/payments (protected)
func (h *TenantHandler) ListTenantPayments(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := paginationFromQuery(r)
	payments, err := h.service.ListTenantPayments(r.Context(), tenantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list tenant payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
