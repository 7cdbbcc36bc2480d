package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireTenant(r chi.Router, tenantHandler *adaptor.TenantHandler, deps routeDeps) {
	r.With(deps.authenticated(string(entity.RoleLandlord))...).Get("/landlord/tenants", tenantHandler.ListLandlordTenants)

	r.Route("/tenant", func(r chi.Router) {
		r.Use(deps.authenticated(string(entity.RoleTenant))...)

		r.Get("/bookings", tenantHandler.ListTenantBookings)
		r.Get("/payments", tenantHandler.ListTenantPayments)
	})
}
