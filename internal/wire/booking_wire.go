package wire

import (
	"dorm-rental/internal/adaptor"
	"dorm-rental/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, deps routeDeps) {
	landlord := string(entity.RoleLandlord)

	// ==================== LANDLORD ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(deps.authenticated(landlord)...)

		r.Post("/landlord/bookings", bookingHandler.CreateLandlordBooking)
		r.Get("/landlord/bookings", bookingHandler.ListLandlordBookings)
		r.Get("/landlord/bookings/export", bookingHandler.ExportBookings)
		r.Patch("/bookings/{id}/status", bookingHandler.UpdateStatus)
		r.Patch("/bookings/{id}/payment", bookingHandler.UpdatePaymentStatus)
	})

	// ==================== TENANT ROUTES ====================
	r.With(deps.authenticated(string(entity.RoleTenant))...).Post("/bookings", bookingHandler.CreateTenantBooking)

	// ==================== SHARED ROUTES ====================
	// ownership is checked by the service
	r.Group(func(r chi.Router) {
		r.Use(deps.authenticated()...)

		r.Get("/bookings/{id}", bookingHandler.GetBooking)
		r.Get("/bookings/{id}/status", bookingHandler.GetBookingStatus)
	})
}
