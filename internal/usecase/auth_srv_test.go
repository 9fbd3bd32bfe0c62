package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository/mocks"
	"home-fixture/internal/dto/request"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService() (AuthService, *mocks.Set) {
	repo, set := mocks.New()
	config := &utils.Config{Session: utils.SessionConfig{TTL: 2 * time.Hour}}
	return NewAuthService(repo, config, zap.NewNop()), set
}

func validRegister(role string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username:      "ravi",
		Email:         "Ravi@Example.com",
		Password:      "s3cretpass",
		Role:          role,
		TermsAccepted: true,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("professional gets a directory entry", func(t *testing.T) {
		svc, set := newTestAuthService()
		req := validRegister("professional")

		set.User.On("FindByEmail", mock.Anything, req.Email).Return(nil, nil)
		set.User.On("FindByUsername", mock.Anything, req.Username).Return(nil, nil)
		set.User.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleProfessional &&
				u.Email == "ravi@example.com" &&
				u.TermsAccepted &&
				utils.CheckPasswordHash(req.Password, u.PasswordHash)
		})).Return(nil)
		set.Professional.On("GetOrCreate", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(&entity.Professional{}, nil)
		set.Session.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

		resp, err := svc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleProfessional, resp.Role)
		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), resp.ExpiresAt, time.Minute)
		set.AssertExpectations(t)
	})

	t.Run("customer skips the directory", func(t *testing.T) {
		svc, set := newTestAuthService()
		req := validRegister("customer")

		set.User.On("FindByEmail", mock.Anything, req.Email).Return(nil, nil)
		set.User.On("FindByUsername", mock.Anything, req.Username).Return(nil, nil)
		set.User.On("Create", mock.Anything, mock.Anything).Return(nil)
		set.Session.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.Register(ctx, req)

		require.NoError(t, err)
		set.Professional.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		svc, _ := newTestAuthService()
		req := validRegister("customer")
		req.TermsAccepted = false

		_, err := svc.Register(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("admin cannot self register", func(t *testing.T) {
		svc, _ := newTestAuthService()

		_, err := svc.Register(ctx, validRegister("admin"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("email taken", func(t *testing.T) {
		svc, set := newTestAuthService()
		req := validRegister("customer")
		set.User.On("FindByEmail", mock.Anything, req.Email).Return(&entity.User{}, nil)

		_, err := svc.Register(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cretpass")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Username:     "ravi",
		Email:        "ravi@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	t.Run("by username", func(t *testing.T) {
		svc, set := newTestAuthService()
		set.User.On("FindByEmail", mock.Anything, "ravi").Return(nil, nil)
		set.User.On("FindByUsername", mock.Anything, "ravi").Return(user, nil)
		set.Session.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
			return s.UserID == user.ID
		})).Return(nil)

		resp, err := svc.Login(ctx, &request.LoginRequest{Username: "ravi", Password: "s3cretpass"})

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, set := newTestAuthService()
		set.User.On("FindByEmail", mock.Anything, "ravi@example.com").Return(user, nil)

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "ravi@example.com", Password: "nope"})

		require.Error(t, err)
		assert.Equal(t, "invalid credentials", err.Error())
	})

	t.Run("deactivated", func(t *testing.T) {
		svc, set := newTestAuthService()
		inactive := *user
		inactive.IsActive = false
		set.User.On("FindByEmail", mock.Anything, "ravi@example.com").Return(&inactive, nil)

		_, err := svc.Login(ctx, &request.LoginRequest{Username: "ravi@example.com", Password: "s3cretpass"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "deactivated")
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, set := newTestAuthService()
	token := uuid.New().String()

	set.Session.On("Revoke", mock.Anything, token).Return(nil).Once()
	require.NoError(t, svc.Logout(context.Background(), token))

	set.Session.On("Revoke", mock.Anything, token).Return(errors.New("db down")).Once()
	assert.Error(t, svc.Logout(context.Background(), token))

	err := svc.Logout(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}
