package adaptor

import (
	"net/http"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetPropertyReviews handles GET /reviews?property_id= (public)
func (h *ReviewHandler) GetPropertyReviews(w http.ResponseWriter, r *http.Request) {
	propertyID := r.URL.Query().Get("property_id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "property_id is required", nil)
		return
	}

	req := paginationFromQuery(r)
	reviews, err := h.service.GetPropertyReviews(r.Context(), propertyID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "get property reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}
