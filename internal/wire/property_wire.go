package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	roomHandler *adaptor.RoomHandler,
	deps routeDeps,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.limiter.Handler)

		r.Get("/public/properties", propertyHandler.ListPublicProperties)
		r.Get("/public/properties/{id}", propertyHandler.GetPublicProperty)
	})

	// ==================== LANDLORD ROUTES ====================
	r.Route("/landlord/properties", func(r chi.Router) {
		r.Use(deps.authenticated(string(entity.RoleLandlord))...)

		r.Get("/", propertyHandler.ListLandlordProperties)
		r.Post("/", propertyHandler.CreateProperty)
		r.Get("/{id}", propertyHandler.GetLandlordProperty)
		// multipart clients reach this with POST + _method=PUT
		r.Put("/{id}", propertyHandler.UpdateProperty)
		r.Delete("/{id}", propertyHandler.DeleteProperty)
		r.Get("/{id}/rooms", roomHandler.ListRooms)
	})
}
