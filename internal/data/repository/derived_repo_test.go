package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"home-fixture/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestInvoiceRepository_CreateIfAbsent(t *testing.T) {
	mock := newMockPool(t)
	repo := NewInvoiceRepository(mock, zap.NewNop())

	invoice := &entity.Invoice{
		ID:            uuid.New(),
		BookingID:     uuid.New(),
		InvoiceNumber: "A1B2C3D4",
		TotalAmount:   499,
		GeneratedAt:   time.Now(),
	}

	expectInsert := func(affected int64) {
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (booking_id) DO NOTHING")).
			WithArgs(invoice.ID, invoice.BookingID, invoice.InvoiceNumber, invoice.TotalAmount, invoice.GeneratedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", affected))
	}

	expectInsert(1)
	created, err := repo.CreateIfAbsent(context.Background(), invoice)
	require.NoError(t, err)
	assert.True(t, created)

	expectInsert(0)
	created, err = repo.CreateIfAbsent(context.Background(), invoice)
	require.NoError(t, err)
	assert.False(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_CreateDuplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		BookingID:  uuid.New(),
		Rating:     4,
		Comment:    "Good",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews")).
		WithArgs(review.ID, review.BookingID, review.Rating, review.Comment, review.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_booking_id_key"})

	err := repo.Create(context.Background(), review)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	mock := newMockPool(t)
	repo := NewNotificationRepository(mock, zap.NewNop())
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectExec(regexp.QuoteMeta("id = ANY($2)")).
		WithArgs(userID, ids).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	require.NoError(t, repo.MarkRead(context.Background(), userID, ids))
	require.NoError(t, repo.MarkRead(context.Background(), userID, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingRepository_GetOrCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTrackingRepository(mock, zap.NewNop())

	bookingID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO job_trackings")).
		WithArgs(pgxmock.AnyArg(), bookingID, entity.DefaultTrackingLatitude, entity.DefaultTrackingLongitude,
			entity.TrackingOnTheWay, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	mock.ExpectQuery(regexp.QuoteMeta("FROM job_trackings")).
		WithArgs(bookingID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "booking_id", "latitude", "longitude", "status", "created_at", "updated_at"}).
			AddRow(uuid.New(), bookingID, 12.9716, 77.5946, entity.TrackingOnTheWay, now, now))

	tracking, err := repo.GetOrCreate(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, 12.9716, tracking.Latitude)
	assert.Equal(t, 77.5946, tracking.Longitude)
	assert.Equal(t, entity.TrackingOnTheWay, tracking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetOrCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPaymentRepository(mock, zap.NewNop())

	bookingID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(pgxmock.AnyArg(), bookingID, 350.0, entity.PaymentStatusPending, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments")).
		WithArgs(bookingID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "booking_id", "amount", "payment_method", "payment_status", "payment_details",
			"paid_at", "created_at", "updated_at",
		}).AddRow(uuid.New(), bookingID, 350.0, entity.PaymentMethodUPI, entity.PaymentStatusSuccess, nil, &now, now, now))

	payment, err := repo.GetOrCreate(context.Background(), bookingID, 350)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccess, payment.Status)
	assert.Equal(t, entity.PaymentMethodUPI, payment.Method)
	require.NotNil(t, payment.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_Search(t *testing.T) {
	mock := newMockPool(t)
	repo := NewServiceRepository(mock, zap.NewNop())

	categoryID := uuid.New()
	maxPrice := 500.0
	now := time.Now()

	mock.ExpectQuery(`FROM "services" WHERE .*"is_active" IS TRUE.*"category_id" = \$1.*"base_price" <= \$2`).
		WithArgs(categoryID.String(), maxPrice).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "category_id", "name", "base_price", "duration", "description", "is_active", "created_at", "updated_at",
		}).AddRow(uuid.New(), categoryID, "Tap repair", 299.0, 45, "Leaking taps", true, now, now))

	services, err := repo.Search(context.Background(), ServiceFilter{CategoryID: &categoryID, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Tap repair", services[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_SearchWithoutFilters(t *testing.T) {
	mock := newMockPool(t)
	repo := NewServiceRepository(mock, zap.NewNop())

	mock.ExpectQuery(`FROM "services" WHERE \("is_active" IS TRUE\) ORDER BY`).
		WithArgs().
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "category_id", "name", "base_price", "duration", "description", "is_active", "created_at", "updated_at",
		}))

	services, err := repo.FindActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessionalRepository_FindByCategory(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfessionalRepository(mock, zap.NewNop())

	categoryID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM "professionals" AS "p" INNER JOIN "users" AS "u" .* WHERE \("p"\."category_id" = \$1\)`).
		WithArgs(categoryID.String()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "category_id", "bio", "experience_years", "availability_status",
			"safety_score", "total_jobs", "rehire_percentage", "is_verified", "profile_picture",
			"created_at", "updated_at", "username",
		}).AddRow(uuid.New(), uuid.New(), &categoryID, "Licensed electrician", 6, true, 4.5, 12, 25.0, true, nil, now, now, "ravi"))

	pros, err := repo.FindByCategory(context.Background(), categoryID)
	require.NoError(t, err)
	require.Len(t, pros, 1)
	assert.Equal(t, "ravi", pros[0].Username)
	assert.True(t, pros[0].InCategory(categoryID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessionalRepository_RefreshReputation(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfessionalRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE professionals p")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.RefreshReputation(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
