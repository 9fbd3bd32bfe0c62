package wire

import (
	"net/http"

	"home-fixture/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures routes open to any signed-in user
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/api/profile", userHandler.GetProfile)
		r.Get("/api/notifications", userHandler.GetNotifications)
	})
}
