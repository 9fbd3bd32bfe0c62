package repository

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// GetOrCreate inserts a PENDING payment for amount when none exists.
	GetOrCreate(ctx context.Context, bookingID uuid.UUID, amount float64) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) GetOrCreate(ctx context.Context, bookingID uuid.UUID, amount float64) (*entity.Payment, error) {
	insert := `
		INSERT INTO payments (id, booking_id, amount, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (booking_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, insert, uuid.New(), bookingID, amount, entity.PaymentStatusPending, time.Now())
	if err != nil {
		r.log.Error("Failed to ensure payment", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("ensure payment for booking %s: %w", bookingID, err)
	}

	payment, err := r.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("payment for booking %s not found", bookingID)
	}

	return payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, amount, payment_method, payment_status, payment_details,
		       paid_at, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.Details,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find payment for booking %s: %w", bookingID, err)
	}

	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET payment_method = $2, payment_status = $3, payment_details = $4,
		    paid_at = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.Method,
		payment.Status,
		payment.Details,
		payment.PaidAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update payment", zap.Error(err), zap.String("payment_id", payment.ID.String()))
		return fmt.Errorf("update payment %s: %w", payment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", payment.ID)
	}

	return nil
}
