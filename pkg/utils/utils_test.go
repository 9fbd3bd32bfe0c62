package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required,min=3"`
	Email string `validate:"required,email"`
	Slot  string `validate:"required,oneof=Morning Afternoon Evening"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct returns nil", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Name: "Asha", Email: "asha@example.com", Slot: "Morning"})
		assert.Nil(t, errs)
	})

	t.Run("collects readable messages per field", func(t *testing.T) {
		errs := ValidateStruct(&sampleRequest{Name: "Al", Email: "nope", Slot: "Night"})
		require.Len(t, errs, 3)
		assert.Equal(t, "Minimum length is 3", errs["Name"])
		assert.Equal(t, "Invalid email format", errs["Email"])
		assert.Equal(t, "Must be one of: Morning, Afternoon, Evening", errs["Slot"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"Slot": "This field is required",
		"Name": "Minimum length is 3",
	})
	assert.Equal(t, "Name: Minimum length is 3; Slot: This field is required", msg)
}

func TestGenerateInvoiceNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{8}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, GenerateInvoiceNumber())
	}
}

func TestIsFutureDate(t *testing.T) {
	now := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)

	assert.False(t, IsFutureDate(time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsFutureDate(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), now), "same day is not in the future")
	assert.True(t, IsFutureDate(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), now))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("-2", 10))
	assert.Equal(t, 3, ParseInt("3", 10))

	assert.Nil(t, ParseFloat(""))
	assert.Nil(t, ParseFloat("cheap"))
	require.NotNil(t, ParseFloat("49.5"))
	assert.Equal(t, 49.5, *ParseFloat("49.5"))
}

func TestUserContext(t *testing.T) {
	id := uuid.New()
	ctx := SetUserContext(t.Context(), id, "customer")
	ctx = SetTokenContext(ctx, "tok")

	gotID, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, gotID)

	role, ok := GetRoleFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "customer", role)

	token, ok := GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	_, ok = GetUserIDFromContext(t.Context())
	assert.False(t, ok)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "fixture")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "fixture", cfg.Database.Name)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxSize)
}
