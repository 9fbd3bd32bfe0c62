package usecase

import (
	"home-fixture/internal/data/repository"
	"home-fixture/pkg/cache"
	"home-fixture/pkg/storage"
	"home-fixture/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Profile      ProfileService
	Catalog      CatalogService
	Professional ProfessionalService
	Booking      BookingService
	Tracking     TrackingService
	Payment      PaymentService
	Review       ReviewService
	Notification NotificationService
}

func NewService(
	repo *repository.Repository,
	c cache.Cache,
	store storage.FileStore,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	notify := NewNotificationService(repo, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo.User, log),
		Profile:      NewProfileService(repo.Profile, log),
		Catalog:      NewCatalogService(repo, c, config.Redis.CacheTTL, log),
		Professional: NewProfessionalService(repo, c, store, log),
		Booking:      NewBookingService(repo, c, notify, log),
		Tracking:     NewTrackingService(repo, notify, log),
		Payment:      NewPaymentService(repo, notify, log),
		Review:       NewReviewService(repo, c, notify, log),
		Notification: notify,
	}
}
