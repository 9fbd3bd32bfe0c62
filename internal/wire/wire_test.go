package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository/mocks"
	"home-fixture/pkg/cache"
	"home-fixture/pkg/storage"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*App, *mocks.Set) {
	t.Helper()
	repo, set := mocks.New()
	config := &utils.Config{
		App:     utils.AppConfig{AllowedOrigins: []string{"*"}},
		Redis:   utils.RedisConfig{CacheTTL: time.Minute},
		Session: utils.SessionConfig{TTL: time.Hour},
		Upload:  utils.UploadConfig{MaxSize: 1 << 20},
	}
	store := storage.NewFileStore(afero.NewMemMapFs(), "/uploads")
	return Wiring(repo, cache.NewNoopCache(), store, config, zap.NewNop()), set
}

// signIn registers a valid session for a fresh user with the given role.
func signIn(set *mocks.Set, role entity.UserRole) (string, uuid.UUID) {
	token := uuid.New().String()
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Role: role, IsActive: true}
	set.Session.On("FindValidSession", mock.Anything, token).
		Return(&entity.Session{UserID: user.ID}, nil)
	set.User.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	return token, user.ID
}

func do(app *App, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRouter_Health(t *testing.T) {
	app, _ := newTestApp(t)

	w := do(app, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_HomeIsPublic(t *testing.T) {
	app, set := newTestApp(t)
	set.Category.On("FindAll", mock.Anything).Return([]*entity.Category{{Name: "Plumbing"}}, nil)
	set.Service.On("FindActive", mock.Anything).Return(nil, nil)
	set.Professional.On("FindTop", mock.Anything, uint(4)).Return(nil, nil)

	w := do(app, http.MethodGet, "/api/home", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Status)
}

func TestRouter_SearchRejectsBadCategory(t *testing.T) {
	app, _ := newTestApp(t)

	w := do(app, http.MethodGet, "/api/search?category=plumbing", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_BookingRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	w := do(app, http.MethodPost, "/api/book/"+uuid.NewString(), "", `{}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RoleGuards(t *testing.T) {
	app, set := newTestApp(t)
	customerToken, _ := signIn(set, entity.RoleCustomer)
	proToken, _ := signIn(set, entity.RoleProfessional)

	w := do(app, http.MethodPut, "/api/bookings/"+uuid.NewString()+"/status/CONFIRMED", customerToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(app, http.MethodPost, "/api/book/"+uuid.NewString(), proToken, `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(app, http.MethodGet, "/api/customer/profile", proToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_NonOwnerCannotChangeStatus(t *testing.T) {
	app, set := newTestApp(t)
	token, userID := signIn(set, entity.RoleProfessional)

	booking := &entity.Booking{
		Base:           entity.Base{ID: uuid.New()},
		CustomerID:     uuid.New(),
		ProfessionalID: uuid.New(),
		Status:         entity.BookingStatusPending,
	}
	set.Booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	set.Professional.On("FindByUserID", mock.Anything, userID).
		Return(&entity.Professional{Base: entity.Base{ID: uuid.New()}, UserID: userID}, nil)

	for _, path := range []string{
		"/api/bookings/" + booking.ID.String() + "/status/confirmed",
		"/api/bookings/update/" + booking.ID.String() + "/confirmed",
	} {
		method := http.MethodPut
		if strings.Contains(path, "/update/") {
			method = http.MethodGet
		}
		w := do(app, method, path, token, "")

		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.Contains(t, decode(t, w).Message, "permission denied")
	}
	set.Booking.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_CreateBookingConflict(t *testing.T) {
	app, set := newTestApp(t)
	token, _ := signIn(set, entity.RoleCustomer)

	category := uuid.New()
	pro := &entity.Professional{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New(), CategoryID: &category}
	service := &entity.Service{Base: entity.Base{ID: uuid.New()}, CategoryID: category}
	set.Professional.On("FindByID", mock.Anything, pro.ID).Return(pro, nil)
	set.Service.On("FindByID", mock.Anything, service.ID).Return(service, nil)
	set.Booking.On("ExistsPendingDuplicate", mock.Anything, mock.Anything).Return(true, nil)

	body := `{"service_id":"` + service.ID.String() + `","booking_date":"` +
		time.Now().UTC().AddDate(0, 0, 5).Format(time.DateOnly) + `"}`
	w := do(app, http.MethodPost, "/api/book/"+pro.ID.String(), token, body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouter_Logout(t *testing.T) {
	app, set := newTestApp(t)
	token, _ := signIn(set, entity.RoleCustomer)
	set.Session.On("Revoke", mock.Anything, token).Return(nil)

	w := do(app, http.MethodPost, "/api/logout", token, "")

	assert.Equal(t, http.StatusOK, w.Code)
	set.Session.AssertCalled(t, "Revoke", mock.Anything, token)
}
