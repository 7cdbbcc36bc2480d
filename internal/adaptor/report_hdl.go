package adaptor

import (
	"net/http"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// SubmitReport handles POST /reports (protected)
func (h *ReportHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	reporterID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	report, err := h.service.SubmitReport(r.Context(), reporterID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit report")
		return
	}

	utils.ResponseCreated(w, "Report submitted", report)
}

// ListReports handles GET /admin/reports (admin)
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	req := request.ReportListRequest{
		PaginatedRequest: paginationFromQuery(r),
		Status:           r.URL.Query().Get("status"),
	}

	reports, err := h.service.ListReports(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list reports")
		return
	}

	utils.ResponseSuccess(w, "success", reports)
}

// UpdateReportStatus handles PATCH /admin/reports/{id} (admin)
func (h *ReportHandler) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateReportStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	report, err := h.service.UpdateReportStatus(r.Context(), adminID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update report status")
		return
	}

	utils.ResponseSuccess(w, "Report "+string(report.Status), report)
}
