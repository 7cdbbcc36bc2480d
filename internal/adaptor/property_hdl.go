package adaptor

import (
	"net/http"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	service   usecase.PropertyService
	maxMemory int64
	log       *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, maxMemory int64, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service:   service,
		maxMemory: maxMemory,
		log:       log.With(zap.String("handler", "property")),
	}
}

// CreateProperty handles POST /landlord/properties (protected, multipart)
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	property, err := h.service.CreateProperty(r.Context(), landlordID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "create property")
		return
	}

	message := "Property published"
	if req.IsDraft {
		message = "Draft saved"
	}
	utils.ResponseCreated(w, message, property)
}

// UpdateProperty handles PUT /landlord/properties/{id} (protected, multipart)
// and POST with _method=PUT.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), landlordID, chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "Property updated", property)
}

// DeleteProperty handles DELETE /landlord/properties/{id} (protected)
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.DeletePropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.DeleteProperty(r.Context(), landlordID, chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "Property deleted", nil)
}

// GetLandlordProperty handles GET /landlord/properties/{id} (protected)
func (h *PropertyHandler) GetLandlordProperty(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	property, err := h.service.GetLandlordProperty(r.Context(), landlordID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// ListLandlordProperties handles GET /landlord/properties (protected)
func (h *PropertyHandler) ListLandlordProperties(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	req := paginationFromQuery(r)
	properties, err := h.service.ListLandlordProperties(r.Context(), landlordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// ListPublicProperties handles GET /public/properties
func (h *PropertyHandler) ListPublicProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.PropertyListRequest{
		PaginatedRequest: paginationFromQuery(r),
		City:             query.Get("city"),
		PropertyType:     query.Get("type"),
		Search:           query.Get("search"),
	}

	properties, err := h.service.ListPublicProperties(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list public properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetPublicProperty handles GET /public/properties/{id}
func (h *PropertyHandler) GetPublicProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.service.GetPublicProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get public property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

func (h *PropertyHandler) parseForm(w http.ResponseWriter, r *http.Request) (*request.PropertyRequest, bool) {
	req, fields, err := parsePropertyForm(r, h.maxMemory)
	if err != nil {
		h.log.Warn("Invalid property form", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return nil, false
	}
	if len(fields) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", fields)
		return nil, false
	}
	return req, true
}
