package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/cache"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// SubmitReview rates a completed booking. A booking takes one review.
	SubmitReview(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	SubmitComplaint(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.CreateComplaintRequest) (*response.ComplaintResponse, error)
	ListComplaints(ctx context.Context, userID uuid.UUID, bookingID string) ([]response.ComplaintResponse, error)
}

type reviewService struct {
	repo      *repository.Repository
	notify    NotificationService
	guard     bookingGuard
	directory directoryCache
	log       *zap.Logger
}

func NewReviewService(repo *repository.Repository, c cache.Cache, notify NotificationService, log *zap.Logger) ReviewService {
	log = log.With(zap.String("service", "review"))
	return &reviewService{
		repo:      repo,
		notify:    notify,
		guard:     bookingGuard{repo: repo, log: log},
		directory: directoryCache{repo: repo, cache: c, log: log},
		log:       log,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.guard.forCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("cannot review a booking that is not completed")
	}

	// Check if booking has already been reviewed
	existing, err := s.repo.Review.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to check existing review")
	}
	if existing != nil {
		return nil, fmt.Errorf("booking already reviewed")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID: booking.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("booking already reviewed")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("failed to create review")
	}

	// Update reputation
	s.directory.refreshReputation(ctx, booking.ProfessionalID)

	s.notify.NotifyProfessional(ctx, booking.ProfessionalID,
		fmt.Sprintf("You received a %d-star review.", req.Rating))

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("booking_id", bookingID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) SubmitComplaint(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.CreateComplaintRequest) (*response.ComplaintResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create complaint validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.guard.forCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}

	complaint := &entity.Complaint{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:   booking.ID,
		Description: req.Description,
		Status:      entity.ComplaintOpen,
	}

	if err := s.repo.Complaint.Create(ctx, complaint); err != nil {
		s.log.Error("Failed to create complaint", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to create complaint")
	}

	s.notify.NotifyProfessional(ctx, booking.ProfessionalID, "A complaint was raised on one of your bookings.")

	s.log.Info("Complaint created",
		zap.String("complaint_id", complaint.ID.String()),
		zap.String("booking_id", bookingID))

	resp := response.ComplaintToResponse(complaint)
	return &resp, nil
}

func (s *reviewService) ListComplaints(ctx context.Context, userID uuid.UUID, bookingID string) ([]response.ComplaintResponse, error) {
	booking, err := s.guard.forParticipant(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	complaints, err := s.repo.Complaint.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to get complaints", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to get complaints")
	}

	return response.ComplaintsToResponse(complaints), nil
}
