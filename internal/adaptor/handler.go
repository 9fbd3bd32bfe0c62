package adaptor

import (
	"home-fixture/internal/usecase"
	"home-fixture/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Catalog  *CatalogHandler
	Profile  *ProfileHandler
	Booking  *BookingHandler
	Tracking *TrackingHandler
	Payment  *PaymentHandler
	Review   *ReviewHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, service.Notification, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Profile:  NewProfileHandler(service.Profile, service.Professional, config.Upload.MaxSize, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Tracking: NewTrackingHandler(service.Tracking, log),
		Payment:  NewPaymentHandler(service.Payment, log),
		Review:   NewReviewHandler(service.Review, log),
	}
}
