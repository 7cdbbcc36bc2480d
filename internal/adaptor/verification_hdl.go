package adaptor

import (
	"net/http"
	"strings"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VerificationHandler struct {
	service   usecase.VerificationService
	maxMemory int64
	log       *zap.Logger
}

func NewVerificationHandler(service usecase.VerificationService, maxMemory int64, log *zap.Logger) *VerificationHandler {
	return &VerificationHandler{
		service:   service,
		maxMemory: maxMemory,
		log:       log.With(zap.String("handler", "verification")),
	}
}

// MyVerification handles GET /landlord/my-verification (protected)
func (h *VerificationHandler) MyVerification(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	verification, err := h.service.MyVerification(r.Context(), landlordID)
	if err != nil {
		handleServiceError(w, h.log, err, "get verification")
		return
	}

	utils.ResponseSuccess(w, "success", verification)
}

// Resubmit handles POST /landlord/resubmit-verification (protected, multipart)
func (h *VerificationHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := parseMultipart(r, h.maxMemory); err != nil {
		h.log.Warn("Invalid verification form", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	form := r.MultipartForm
	req := request.ResubmitVerificationRequest{
		IDFront: formFile(form, "id_front"),
		IDBack:  formFile(form, "id_back"),
	}
	if v := formValues(form, "id_type"); len(v) > 0 {
		req.IDType = strings.TrimSpace(v[0])
	}

	verification, err := h.service.Resubmit(r.Context(), landlordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "resubmit verification")
		return
	}

	utils.ResponseCreated(w, "Verification submitted", verification)
}

// List handles GET /admin/verifications (admin)
func (h *VerificationHandler) List(w http.ResponseWriter, r *http.Request) {
	req := request.VerificationListRequest{
		PaginatedRequest: paginationFromQuery(r),
		Status:           r.URL.Query().Get("status"),
	}

	verifications, err := h.service.List(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list verifications")
		return
	}

	utils.ResponseSuccess(w, "success", verifications)
}

// Review handles PATCH /admin/verifications/{id} (admin)
func (h *VerificationHandler) Review(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.ReviewVerificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	verification, err := h.service.Review(r.Context(), adminID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "review verification")
		return
	}

	utils.ResponseSuccess(w, "Verification "+string(verification.Status), verification)
}
