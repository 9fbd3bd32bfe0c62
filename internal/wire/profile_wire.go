package wire

import (
	"net/http"

	"home-fixture/internal/adaptor"
	"home-fixture/internal/data/entity"
	"home-fixture/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/api/customer", func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(log, entity.RoleCustomer))

		r.Get("/profile", profileHandler.GetCustomerProfile)
		r.Put("/profile", profileHandler.UpdateCustomerProfile)
	})

	r.Route("/api/professional", func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(log, entity.RoleProfessional))

		r.Get("/profile", profileHandler.GetProfessionalProfile)
		r.Put("/profile", profileHandler.UpdateProfessionalProfile)
		r.Get("/documents", profileHandler.ListDocuments)
		r.Post("/documents", profileHandler.UploadDocument) // multipart: document_type, document_file
	})
}
