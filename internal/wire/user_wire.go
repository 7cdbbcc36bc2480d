package wire

import (
	"dorm-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, deps routeDeps) {
	r.Route("/me", func(r chi.Router) {
		r.Use(deps.authenticated()...)

		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
		r.Put("/password", userHandler.ChangePassword)
	})
}
