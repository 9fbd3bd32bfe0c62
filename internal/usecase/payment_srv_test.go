package usecase

import (
	"context"
	"testing"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository/mocks"
	"home-fixture/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPaymentService() (PaymentService, *mocks.Set) {
	repo, set := mocks.New()
	log := zap.NewNop()
	return NewPaymentService(repo, NewNotificationService(repo, log), log), set
}

func pendingPayment(bookingID uuid.UUID, amount float64) *entity.Payment {
	return &entity.Payment{
		Base:      entity.Base{ID: uuid.New()},
		BookingID: bookingID,
		Amount:    amount,
		Status:    entity.PaymentStatusPending,
	}
}

func TestPaymentService_GetPayment(t *testing.T) {
	svc, set := newTestPaymentService()
	f := newBookingFixture()
	booking := f.booking(entity.BookingStatusConfirmed)

	set.Booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	set.Service.On("FindByID", mock.Anything, f.service.ID).Return(f.service, nil)
	set.Payment.On("GetOrCreate", mock.Anything, booking.ID, 499.0).Return(pendingPayment(booking.ID, 499), nil)

	resp, err := svc.GetPayment(context.Background(), f.customerID, booking.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 499.0, resp.Amount)
	assert.Equal(t, entity.PaymentStatusPending, resp.Status)
}

func TestPaymentService_Pay(t *testing.T) {
	ctx := context.Background()

	t.Run("marks payment successful", func(t *testing.T) {
		svc, set := newTestPaymentService()
		f := newBookingFixture()
		booking := f.booking(entity.BookingStatusConfirmed)

		set.Booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
		set.Service.On("FindByID", mock.Anything, f.service.ID).Return(f.service, nil)
		set.Payment.On("GetOrCreate", mock.Anything, booking.ID, 499.0).Return(pendingPayment(booking.ID, 499), nil)
		set.Payment.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.Status == entity.PaymentStatusSuccess && p.Method == entity.PaymentMethodUPI && p.PaidAt != nil
		})).Return(nil)
		set.Professional.On("FindByID", mock.Anything, f.pro.ID).Return(f.pro, nil)
		set.Notification.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := svc.Pay(ctx, f.customerID, booking.ID.String(), &request.PayRequest{Method: "UPI"})

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusSuccess, resp.Status)
		set.AssertExpectations(t)
	})

	t.Run("already paid", func(t *testing.T) {
		svc, set := newTestPaymentService()
		f := newBookingFixture()
		booking := f.booking(entity.BookingStatusCompleted)
		paid := pendingPayment(booking.ID, 499)
		paidAt := time.Now()
		paid.Status, paid.PaidAt = entity.PaymentStatusSuccess, &paidAt

		set.Booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
		set.Service.On("FindByID", mock.Anything, f.service.ID).Return(f.service, nil)
		set.Payment.On("GetOrCreate", mock.Anything, booking.ID, 499.0).Return(paid, nil)

		_, err := svc.Pay(ctx, f.customerID, booking.ID.String(), &request.PayRequest{Method: "CARD"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already paid")
		set.Payment.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		svc, set := newTestPaymentService()
		f := newBookingFixture()
		booking := f.booking(entity.BookingStatusCancelled)

		set.Booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := svc.Pay(ctx, f.customerID, booking.ID.String(), &request.PayRequest{Method: "WALLET"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot pay")
	})

	t.Run("professional cannot pay", func(t *testing.T) {
		svc, set := newTestPaymentService()
		f := newBookingFixture()
		booking := f.booking(entity.BookingStatusConfirmed)

		set.Booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := svc.Pay(ctx, f.pro.UserID, booking.ID.String(), &request.PayRequest{Method: "UPI"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unknown method", func(t *testing.T) {
		svc, _ := newTestPaymentService()

		_, err := svc.Pay(ctx, uuid.New(), uuid.New().String(), &request.PayRequest{Method: "CASH"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}
