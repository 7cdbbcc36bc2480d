package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, deps routeDeps) {
	r.With(deps.limiter.Handler).Get("/reviews", reviewHandler.GetPropertyReviews)
	r.With(deps.authenticated(string(entity.RoleTenant))...).Post("/reviews", reviewHandler.CreateReview)
}
