package wire

import (
	"dorm-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, deps routeDeps) {
	// ==================== PUBLIC ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.limiter.Handler)

		r.Post("/api/register", authHandler.Register)
		r.Post("/api/login", authHandler.Login)
	})

	// ==================== PROTECTED ROUTES ====================
	r.With(deps.authenticated()...).Post("/api/logout", authHandler.Logout)
}
