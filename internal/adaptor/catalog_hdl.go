package adaptor

import (
	"encoding/json"
	"net/http"

	"home-fixture/internal/dto/request"
	"home-fixture/internal/usecase"
	"home-fixture/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// Home handles GET /api/home
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get home")
		return
	}

	utils.ResponseSuccess(w, "success", home)
}

// CategoryProfessionals handles GET /api/categories/{id}
func (h *CatalogHandler) CategoryProfessionals(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.CategoryProfessionals(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get category professionals")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// ServiceProfessionals handles GET /api/services/{id}
func (h *CatalogHandler) ServiceProfessionals(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ServiceProfessionals(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get service professionals")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// SearchServices handles GET /api/search?category=&max_price=
func (h *CatalogHandler) SearchServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.SearchServicesRequest{
		CategoryID: query.Get("category"),
		MaxPrice:   utils.ParseFloat(query.Get("max_price")),
	}

	services, err := h.service.SearchServices(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// ListService handles POST /api/services (professional)
func (h *CatalogHandler) ListService(w http.ResponseWriter, r *http.Request) {
	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	service, err := h.service.ListService(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list service")
		return
	}

	utils.ResponseCreated(w, "Service listed", service)
}
