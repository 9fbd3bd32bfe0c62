package usecase

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// GetPayment returns the booking's payment, opening a PENDING one priced at the service base price.
	GetPayment(ctx context.Context, customerID uuid.UUID, bookingID string) (*response.PaymentResponse, error)
	Pay(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.PayRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo   *repository.Repository
	notify NotificationService
	guard  bookingGuard
	log    *zap.Logger
}

func NewPaymentService(repo *repository.Repository, notify NotificationService, log *zap.Logger) PaymentService {
	log = log.With(zap.String("service", "payment"))
	return &paymentService{
		repo:   repo,
		notify: notify,
		guard:  bookingGuard{repo: repo, log: log},
		log:    log,
	}
}

func (s *paymentService) GetPayment(ctx context.Context, customerID uuid.UUID, bookingID string) (*response.PaymentResponse, error) {
	booking, err := s.guard.forCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}

	payment, err := s.open(ctx, booking)
	if err != nil {
		return nil, err
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) Pay(ctx context.Context, customerID uuid.UUID, bookingID string, req *request.PayRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.guard.forCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, err
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("cannot pay for a cancelled booking")
	}

	payment, err := s.open(ctx, booking)
	if err != nil {
		return nil, err
	}
	if payment.Status == entity.PaymentStatusSuccess {
		return nil, fmt.Errorf("booking already paid")
	}

	now := time.Now()
	payment.Method = entity.PaymentMethod(req.Method)
	payment.Details = req.Details
	payment.Status = entity.PaymentStatusSuccess
	payment.PaidAt = &now
	payment.UpdatedAt = now

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		s.log.Error("Failed to record payment", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to process payment")
	}

	s.notify.NotifyProfessional(ctx, booking.ProfessionalID,
		fmt.Sprintf("Payment of %.2f received via %s.", payment.Amount, payment.Method))

	s.log.Info("Payment recorded",
		zap.String("booking_id", bookingID),
		zap.String("method", req.Method),
		zap.Float64("amount", payment.Amount))

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) open(ctx context.Context, booking *entity.Booking) (*entity.Payment, error) {
	amount, err := s.guard.amount(ctx, booking)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.GetOrCreate(ctx, booking.ID, amount)
	if err != nil {
		s.log.Error("Failed to get payment", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to get payment")
	}

	return payment, nil
}
