package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/dto/response"
	"dorm-rental/pkg/domain"
	"dorm-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bookingRouter(h *BookingHandler, userID uuid.UUID, role string) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, withUser(req, userID, role))
		})
	})
	r.Get("/landlord/bookings", h.ListLandlordBookings)
	r.Get("/landlord/bookings/export", h.ExportBookings)
	r.Get("/bookings/{id}/status", h.GetBookingStatus)
	r.Patch("/bookings/{id}/status", h.UpdateStatus)
	r.Patch("/bookings/{id}/payment", h.UpdatePaymentStatus)
	return r
}

func TestUpdateStatusPassesCancelDetails(t *testing.T) {
	landlordID := uuid.New()
	bookingID := uuid.NewString()
	var got *request.UpdateBookingStatusRequest

	svc := &stubBookingService{
		updateStatus: func(id uuid.UUID, bid string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
			assert.Equal(t, landlordID, id)
			assert.Equal(t, bookingID, bid)
			got = req
			return &response.BookingResponse{ID: bid, Status: domain.BookingStatusCancelled}, nil
		},
	}
	h := NewBookingHandler(svc, &stubExportService{}, zap.NewNop())

	body := `{"status":"cancelled","reason":"guest left early","should_refund":true,"refund_amount":1500}`
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID+"/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	bookingRouter(h, landlordID, "landlord").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "cancelled", got.Status)
	assert.Equal(t, "guest left early", got.Reason)
	assert.True(t, got.ShouldRefund)
	require.NotNil(t, got.RefundAmount)
	assert.Equal(t, 1500.0, *got.RefundAmount)
	assert.Equal(t, "Booking cancelled", decodeEnvelope(t, rec).Message)
}

func TestUpdateStatusRejectedTransitionIsConflict(t *testing.T) {
	svc := &stubBookingService{
		updateStatus: func(uuid.UUID, string, *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
			return nil, errors.New("cannot change booking status from pending to completed")
		},
	}
	h := NewBookingHandler(svc, &stubExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"completed"}`))
	rec := httptest.NewRecorder()
	bookingRouter(h, uuid.New(), "landlord").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateStatusMissingReasonIsUnprocessable(t *testing.T) {
	svc := &stubBookingService{
		updateStatus: func(uuid.UUID, string, *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
			return nil, utils.NewValidationError("reason", "is required to cancel a booking")
		},
	}
	h := NewBookingHandler(svc, &stubExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"cancelled","reason":"  "}`))
	rec := httptest.NewRecorder()
	bookingRouter(h, uuid.New(), "landlord").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Errors), "reason")
}

func TestUpdateStatusMalformedBody(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{}, &stubExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status", strings.NewReader(`{"status":`))
	rec := httptest.NewRecorder()
	bookingRouter(h, uuid.New(), "landlord").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePaymentOnCancelledBookingIsConflict(t *testing.T) {
	svc := &stubBookingService{
		updatePayment: func(uuid.UUID, string, *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error) {
			return nil, errors.New("cannot update payment of a cancelled booking")
		},
	}
	h := NewBookingHandler(svc, &stubExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+uuid.NewString()+"/payment", strings.NewReader(`{"payment_status":"paid"}`))
	rec := httptest.NewRecorder()
	bookingRouter(h, uuid.New(), "landlord").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBookingStatusPassesRole(t *testing.T) {
	tenantID := uuid.New()
	bookingID := uuid.NewString()
	svc := &stubBookingService{
		getBooking: func(userID uuid.UUID, role, bid string) (*response.BookingDetailResponse, error) {
			assert.Equal(t, tenantID, userID)
			assert.Equal(t, "tenant", role)
			return &response.BookingDetailResponse{BookingResponse: response.BookingResponse{
				ID:           bid,
				Status:       domain.BookingStatusConfirmed,
				NextStatuses: domain.NextStatuses(domain.BookingStatusConfirmed),
			}}, nil
		},
	}
	h := NewBookingHandler(svc, &stubExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+bookingID+"/status", nil)
	rec := httptest.NewRecorder()
	bookingRouter(h, tenantID, "tenant").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, data, `"status":"confirmed"`)
	assert.Contains(t, data, `"next_statuses"`)
}

func TestListLandlordBookingsReadsFilters(t *testing.T) {
	var got *request.BookingListRequest
	svc := &stubBookingService{
		list: func(_ uuid.UUID, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
			got = req
			return response.NewPaginatedResponse[response.BookingResponse](nil, req.Page, req.PerPage, 0), nil
		},
	}
	h := NewBookingHandler(svc, &stubExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/landlord/bookings?status=pending&page=2&per_page=5&search=ana", nil)
	rec := httptest.NewRecorder()
	bookingRouter(h, uuid.New(), "landlord").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "ana", got.Search)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.PerPage)
}

func TestExportBookingsWritesSpreadsheet(t *testing.T) {
	export := &stubExportService{body: []byte("PK\x03\x04fake")}
	h := NewBookingHandler(&stubBookingService{}, export, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/landlord/bookings/export?status=confirmed", nil)
	rec := httptest.NewRecorder()
	bookingRouter(h, uuid.New(), "landlord").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=\"bookings-")
	assert.Equal(t, "PK\x03\x04fake", rec.Body.String())
	assert.Equal(t, "confirmed", export.req.Status)
}

func TestExportBookingsError(t *testing.T) {
	export := &stubExportService{err: utils.NewValidationError("status", "must be one of: pending confirmed completed partial-completed cancelled")}
	h := NewBookingHandler(&stubBookingService{}, export, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/landlord/bookings/export?status=bogus", nil)
	rec := httptest.NewRecorder()
	bookingRouter(h, uuid.New(), "landlord").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestProtectedHandlerWithoutUser(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{}, &stubExportService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/bookings/x/status", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
