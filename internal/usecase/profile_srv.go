package usecase

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService manages the customer's service address.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.CustomerProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateCustomerProfileRequest) (*response.CustomerProfileResponse, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	log         *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, log *zap.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		log:         log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.CustomerProfileResponse, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get profile")
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateCustomerProfileRequest) (*response.CustomerProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get profile")
	}

	profile.FullName = req.FullName
	profile.Address = req.Address
	profile.Latitude = req.Latitude
	profile.Longitude = req.Longitude
	profile.City = req.City
	profile.Pincode = req.Pincode
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Customer profile updated", zap.String("user_id", userID.String()))

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}
