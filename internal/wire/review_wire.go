package wire

import (
	"net/http"

	"home-fixture/internal/adaptor"
	"home-fixture/internal/data/entity"
	"home-fixture/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.With(auth).Get("/api/bookings/{id}/complaints", reviewHandler.ListComplaints)

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(log, entity.RoleCustomer))

		r.Post("/api/bookings/{id}/review", reviewHandler.SubmitReview)
		r.Post("/api/bookings/{id}/complaint", reviewHandler.SubmitComplaint)
	})
}
