package adaptor

import (
	"net/http"

	"dorm-rental/internal/dto/request"
	"dorm-rental/internal/usecase"
	"dorm-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// CreateRoom handles POST /landlord/rooms (protected)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), landlordID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// UpdateRoom handles PUT /rooms/{id} (protected)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), landlordID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated", room)
}

// UpdateRoomStatus handles PATCH /rooms/{id}/status (protected)
func (h *RoomHandler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateRoomStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.service.UpdateRoomStatus(r.Context(), landlordID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room status")
		return
	}

	utils.ResponseSuccess(w, "Room status updated", room)
}

// DeleteRoom handles DELETE /rooms/{id} (protected)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(r.Context(), landlordID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "Room deleted", nil)
}

// ListRooms handles GET /landlord/properties/{id}/rooms (protected)
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	landlordID, ok := currentUser(w, r)
	if !ok {
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), landlordID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}
