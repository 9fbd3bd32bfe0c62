package usecase

import (
	"context"
	"testing"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository/mocks"
	"home-fixture/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.UserProfile{Base: entity.Base{ID: uuid.New()}, UserID: userID}

	profiles := new(mocks.ProfileRepository)
	svc := NewProfileService(profiles, zap.NewNop())

	profiles.On("GetOrCreate", mock.Anything, userID).Return(profile, nil)

	got, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), got.UserID)

	city, pincode := "Pune", "411001"
	profiles.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.UserProfile) bool {
		return p.FullName == "Meera Rao" && p.City != nil && *p.City == "Pune"
	})).Return(nil)

	updated, err := svc.UpdateProfile(ctx, userID, &request.UpdateCustomerProfileRequest{
		FullName: "Meera Rao",
		Address:  "12 MG Road",
		City:     &city,
		Pincode:  &pincode,
	})
	require.NoError(t, err)
	assert.Equal(t, "12 MG Road", updated.Address)

	bad := "41100"
	_, err = svc.UpdateProfile(ctx, userID, &request.UpdateCustomerProfileRequest{
		FullName: "Meera Rao",
		Address:  "12 MG Road",
		Pincode:  &bad,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	profiles.AssertNumberOfCalls(t, "Update", 1)
}
