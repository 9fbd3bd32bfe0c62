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

type TrackingHandler struct {
	service usecase.TrackingService
	log     *zap.Logger
}

func NewTrackingHandler(service usecase.TrackingService, log *zap.Logger) *TrackingHandler {
	return &TrackingHandler{
		service: service,
		log:     log.With(zap.String("handler", "tracking")),
	}
}

// Track handles GET /api/bookings/{id}/track
func (h *TrackingHandler) Track(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	tracking, err := h.service.Track(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "track job")
		return
	}

	utils.ResponseSuccess(w, "success", tracking)
}

// UpdateTracking handles PUT /api/bookings/{id}/track (professional)
func (h *TrackingHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tracking, err := h.service.UpdateTracking(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update tracking")
		return
	}

	utils.ResponseSuccess(w, "Tracking updated", tracking)
}
