package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireVerification(r chi.Router, verificationHandler *adaptor.VerificationHandler, deps routeDeps) {
	// ==================== LANDLORD ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.authenticated(string(entity.RoleLandlord))...)

		r.Get("/landlord/my-verification", verificationHandler.MyVerification)
		r.Post("/landlord/resubmit-verification", verificationHandler.Resubmit)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/verifications", func(r chi.Router) {
		r.Use(deps.authenticated(string(entity.RoleAdmin))...)

		r.Get("/", verificationHandler.List)
		r.Patch("/{id}", verificationHandler.Review)
	})
}
