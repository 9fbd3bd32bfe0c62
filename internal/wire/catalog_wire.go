package wire

import (
	"net/http"

	"home-fixture/internal/adaptor"
	"home-fixture/internal/data/entity"
	"home-fixture/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	auth func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/home", catalogHandler.Home)
	r.Get("/api/categories/{id}", catalogHandler.CategoryProfessionals)
	r.Get("/api/services/{id}", catalogHandler.ServiceProfessionals)
	r.Get("/api/search", catalogHandler.SearchServices) // ?category=<uuid>&max_price=<n>

	// ==================== PROFESSIONAL ROUTES ====================
	r.With(
		auth,
		middleware.RequireRole(log, entity.RoleProfessional, entity.RoleAdmin),
	).Post("/api/services", catalogHandler.ListService)
}
