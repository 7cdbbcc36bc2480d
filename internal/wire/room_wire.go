package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler, deps routeDeps) {
	r.Group(func(r chi.Router) {
		r.Use(deps.authenticated(string(entity.RoleLandlord))...)

		r.Post("/landlord/rooms", roomHandler.CreateRoom)
		r.Put("/rooms/{id}", roomHandler.UpdateRoom)
		r.Patch("/rooms/{id}/status", roomHandler.UpdateRoomStatus)
		r.Delete("/rooms/{id}", roomHandler.DeleteRoom)
	})
}
