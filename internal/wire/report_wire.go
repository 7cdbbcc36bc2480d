package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler, deps routeDeps) {
	r.With(deps.authenticated(string(entity.RoleTenant))...).Post("/reports", reportHandler.SubmitReport)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/reports", func(r chi.Router) {
		r.Use(deps.authenticated(string(entity.RoleAdmin))...)

		r.Get("/", reportHandler.ListReports)
		r.Patch("/{id}", reportHandler.UpdateReportStatus)
	})
}
