package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"home-fixture/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingRowColumns = []string{
	"id", "customer_id", "professional_id", "service_id", "booking_date", "time_slot",
	"service_address", "requirements", "status", "created_at", "updated_at",
}

func newBookingRepo(t *testing.T) (pgxmock.PgxPoolIface, BookingRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewBookingRepository(mock, zap.NewNop())
}

func TestBookingRepository_Create(t *testing.T) {
	mock, repo := newBookingRepo(t)

	serviceID := uuid.New()
	now := time.Now()
	booking := &entity.Booking{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CustomerID:     uuid.New(),
		ProfessionalID: uuid.New(),
		ServiceID:      &serviceID,
		BookingDate:    time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:       entity.TimeSlotMorning,
		Status:         entity.BookingStatusPending,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(booking.ID, booking.CustomerID, booking.ProfessionalID, booking.ServiceID,
			booking.BookingDate, booking.TimeSlot, booking.ServiceAddress, booking.Requirements,
			booking.Status, booking.CreatedAt, booking.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), booking))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, repo := newBookingRepo(t)

		id, customerID, proID, serviceID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
		date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
		address := "12 MG Road"
		now := time.Now()

		rows := pgxmock.NewRows(bookingRowColumns).
			AddRow(id, customerID, proID, &serviceID, date, "Evening", &address, nil,
				entity.BookingStatusConfirmed, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(rows)

		booking, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, proID, booking.ProfessionalID)
		assert.Equal(t, serviceID, *booking.ServiceID)
		assert.Equal(t, "12 MG Road", *booking.ServiceAddress)
		assert.Nil(t, booking.Requirements)
		assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil", func(t *testing.T) {
		mock, repo := newBookingRepo(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		booking, err := repo.FindByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, booking)
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		mock, repo := newBookingRepo(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
			WithArgs(id).
			WillReturnError(errors.New("connection reset"))

		booking, err := repo.FindByID(context.Background(), id)
		assert.Nil(t, booking)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestBookingRepository_FindByCustomerID(t *testing.T) {
	mock, repo := newBookingRepo(t)

	customerID := uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows(bookingRowColumns).
		AddRow(uuid.New(), customerID, uuid.New(), nil, now.AddDate(0, 0, 3), "Morning", nil, nil, entity.BookingStatusPending, now, now).
		AddRow(uuid.New(), customerID, uuid.New(), nil, now.AddDate(0, 0, 1), "Evening", nil, nil, entity.BookingStatusCompleted, now, now)

	mock.ExpectQuery(`WHERE customer_id = \$1\s+ORDER BY booking_date DESC`).
		WithArgs(customerID, 10, 0).
		WillReturnRows(rows)

	bookings, err := repo.FindByCustomerID(context.Background(), customerID, 10, 0)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, entity.BookingStatusPending, bookings[0].Status)
	assert.Nil(t, bookings[1].ServiceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ExistsPendingDuplicate(t *testing.T) {
	mock, repo := newBookingRepo(t)

	booking := &entity.Booking{
		CustomerID:     uuid.New(),
		ProfessionalID: uuid.New(),
		BookingDate:    time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:       entity.TimeSlotMorning,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(booking.CustomerID, booking.ProfessionalID, booking.ServiceID, booking.BookingDate, booking.TimeSlot).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsPendingDuplicate(context.Background(), booking)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	t.Run("updates row", func(t *testing.T) {
		mock, repo := newBookingRepo(t)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $2")).
			WithArgs(id, entity.BookingStatusCompleted, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), id, entity.BookingStatusCompleted))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		mock, repo := newBookingRepo(t)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $2")).
			WithArgs(id, entity.BookingStatusCancelled, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateStatus(context.Background(), id, entity.BookingStatusCancelled)
		assert.ErrorContains(t, err, "not found")
	})
}
