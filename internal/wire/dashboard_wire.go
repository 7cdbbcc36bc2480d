package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler, deps routeDeps) {
	r.With(deps.authenticated(string(entity.RoleLandlord))...).Get("/landlord/dashboard/stats", dashboardHandler.Stats)
}
