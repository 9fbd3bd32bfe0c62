package usecase

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TrackingService interface {
	// Track returns the job position, creating the default record on first view.
	Track(ctx context.Context, userID uuid.UUID, bookingID string) (*response.TrackingResponse, error)
	UpdateTracking(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateTrackingRequest) (*response.TrackingResponse, error)
}

type trackingService struct {
	repo   *repository.Repository
	notify NotificationService
	guard  bookingGuard
	log    *zap.Logger
}

func NewTrackingService(repo *repository.Repository, notify NotificationService, log *zap.Logger) TrackingService {
	log = log.With(zap.String("service", "tracking"))
	return &trackingService{
		repo:   repo,
		notify: notify,
		guard:  bookingGuard{repo: repo, log: log},
		log:    log,
	}
}

func (s *trackingService) Track(ctx context.Context, userID uuid.UUID, bookingID string) (*response.TrackingResponse, error) {
	booking, err := s.guard.forParticipant(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	tracking, err := s.repo.Tracking.GetOrCreate(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to get tracking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to get tracking")
	}

	resp := response.NewTrackingResponse(booking, tracking)
	return &resp, nil
}

func (s *trackingService) UpdateTracking(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateTrackingRequest) (*response.TrackingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update tracking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.guard.forOwner(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("cannot track a cancelled booking")
	}

	now := time.Now()
	tracking := &entity.JobTracking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: booking.ID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    entity.TrackingStatus(req.Status),
	}

	if err := s.repo.Tracking.Upsert(ctx, tracking); err != nil {
		s.log.Error("Failed to update tracking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update tracking")
	}

	if tracking.Status == entity.TrackingArrived {
		s.notify.Notify(ctx, booking.CustomerID, "Your professional has arrived.")
	}

	s.log.Info("Tracking updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status))

	resp := response.NewTrackingResponse(booking, tracking)
	return &resp, nil
}
