package adaptor

import (
	"net/http"

	"home-fixture/internal/usecase"
	"home-fixture/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	notify  usecase.NotificationService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, notify usecase.NotificationService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		notify:  notify,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// GetNotifications handles GET /api/notifications
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	notifications, err := h.notify.GetNotifications(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}
