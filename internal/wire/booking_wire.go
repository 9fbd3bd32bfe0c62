package wire

import (
	"net/http"

	"home-fixture/internal/adaptor"
	"home-fixture/internal/data/entity"
	"home-fixture/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking covers the booking lifecycle with its tracking and payment routes
func wireBooking(
	r chi.Router,
	handler *adaptor.Handler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	bookingHandler := handler.Booking

	// ==================== ANY PARTICIPANT ====================
	// The services check that the caller is the customer or the assigned professional.
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/api/bookings/{id}/details", bookingHandler.GetJobDetails)
		r.Get("/api/bookings/{id}/invoice", bookingHandler.GetInvoice)
		r.Get("/api/bookings/{id}/track", handler.Tracking.Track)
	})

	// ==================== CUSTOMER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(log, entity.RoleCustomer))

		r.Post("/api/book/{proID}", bookingHandler.CreateBooking)
		r.Get("/api/bookings/customer", bookingHandler.ListCustomerBookings)
		r.Get("/api/bookings/{id}/payment", handler.Payment.GetPayment)
		r.Post("/api/bookings/{id}/payment", handler.Payment.Pay)
	})

	// ==================== PROFESSIONAL ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(log, entity.RoleProfessional))

		r.Get("/api/bookings/professional", bookingHandler.ListProfessionalBookings)
		r.Put("/api/bookings/{id}/status/{status}", bookingHandler.UpdateStatus)
		r.Get("/api/bookings/update/{id}/{status}", bookingHandler.UpdateStatus)
		r.Put("/api/bookings/{id}/job", bookingHandler.UpdateJob)
		r.Put("/api/bookings/{id}/track", handler.Tracking.UpdateTracking)
	})
}
