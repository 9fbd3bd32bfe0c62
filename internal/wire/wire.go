package wire

import (
	"net/http"

	"home-fixture/internal/adaptor"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/usecase"
	"home-fixture/pkg/cache"
	"home-fixture/pkg/middleware"
	"home-fixture/pkg/storage"
	"home-fixture/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the shared dependencies
func Wiring(
	repo *repository.Repository,
	c cache.Cache,
	store storage.FileStore,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, c, store, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	auth := middleware.AuthSession(repo.Session, repo.User, logger)

	wireAuth(r, handler.Auth, auth)
	wireUser(r, handler.User, auth)
	wireCatalog(r, handler.Catalog, auth, logger)
	wireProfile(r, handler.Profile, auth, logger)
	wireBooking(r, handler, auth, logger)
	wireReview(r, handler.Review, auth, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
