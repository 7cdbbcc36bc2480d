package adaptor

import (
	"net/http"

	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Stats handles GET /landlord/dashboard/stats (protected)
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), landlordID)
	if err != nil {
		handleServiceError(w, h.log, err, "load dashboard stats")
		return
	}

	message := "success"
	if len(stats.Warnings) > 0 {
		message = "Some statistics are unavailable"
	}
	utils.ResponseSuccess(w, message, stats)
}
