package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository/mocks"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		role, _ := utils.GetRoleFromContext(r.Context())
		token, _ := utils.GetTokenFromContext(r.Context())
		w.Header().Set("X-User", userID.String())
		w.Header().Set("X-Role", role)
		w.Header().Set("X-Token", token)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthSession(t *testing.T) {
	log := zap.NewNop()
	token := uuid.New().String()
	userID := uuid.New()

	t.Run("missing header", func(t *testing.T) {
		sessions, users := new(mocks.SessionRepository), new(mocks.UserRepository)
		h := AuthSession(sessions, users, log)(echoUser(t))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		sessions, users := new(mocks.SessionRepository), new(mocks.UserRepository)
		h := AuthSession(sessions, users, log)(echoUser(t))

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		sessions.AssertNotCalled(t, "FindValidSession", mock.Anything, mock.Anything)
	})

	t.Run("unknown session", func(t *testing.T) {
		sessions, users := new(mocks.SessionRepository), new(mocks.UserRepository)
		sessions.On("FindValidSession", mock.Anything, token).Return(nil, nil)
		h := AuthSession(sessions, users, log)(echoUser(t))

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		sessions, users := new(mocks.SessionRepository), new(mocks.UserRepository)
		sessions.On("FindValidSession", mock.Anything, token).Return(nil, errors.New("db down"))
		h := AuthSession(sessions, users, log)(echoUser(t))

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("valid session sets context", func(t *testing.T) {
		sessions, users := new(mocks.SessionRepository), new(mocks.UserRepository)
		sessions.On("FindValidSession", mock.Anything, token).
			Return(&entity.Session{UserID: userID}, nil)
		users.On("FindByID", mock.Anything, userID).
			Return(&entity.User{Base: entity.Base{ID: userID}, Role: entity.RoleProfessional, IsActive: true}, nil)
		h := AuthSession(sessions, users, log)(echoUser(t))

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, userID.String(), w.Header().Get("X-User"))
		assert.Equal(t, "professional", w.Header().Get("X-Role"))
		assert.Equal(t, token, w.Header().Get("X-Token"))
	})

	t.Run("inactive user", func(t *testing.T) {
		sessions, users := new(mocks.SessionRepository), new(mocks.UserRepository)
		sessions.On("FindValidSession", mock.Anything, token).
			Return(&entity.Session{UserID: userID}, nil)
		users.On("FindByID", mock.Anything, userID).
			Return(&entity.User{Base: entity.Base{ID: userID}, Role: entity.RoleCustomer}, nil)
		h := AuthSession(sessions, users, log)(echoUser(t))

		req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	log := zap.NewNop()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireRole(log, entity.RoleCustomer)(ok)

	tests := []struct {
		name string
		role string
		auth bool
		want int
	}{
		{"customer allowed", "customer", true, http.StatusNoContent},
		{"professional forbidden", "professional", true, http.StatusForbidden},
		{"anonymous", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings/customer", nil)
			if tt.auth {
				req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), tt.role))
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"status":false`)
}
