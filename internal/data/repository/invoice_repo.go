package repository

import (
	"context"
	"fmt"

	"home-fixture/internal/data/entity"
	"home-fixture/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InvoiceRepository interface {
	// CreateIfAbsent reports whether a new invoice row was written.
	CreateIfAbsent(ctx context.Context, invoice *entity.Invoice) (bool, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error)
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

func (r *invoiceRepository) CreateIfAbsent(ctx context.Context, invoice *entity.Invoice) (bool, error) {
	query := `
		INSERT INTO invoices (id, booking_id, invoice_number, total_amount, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (booking_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		invoice.ID,
		invoice.BookingID,
		invoice.InvoiceNumber,
		invoice.TotalAmount,
		invoice.GeneratedAt,
	)
	if err != nil {
		r.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("booking_id", invoice.BookingID.String()),
		)
		return false, fmt.Errorf("create invoice for booking %s: %w", invoice.BookingID, err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *invoiceRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error) {
	query := `
		SELECT id, booking_id, invoice_number, total_amount, generated_at
		FROM invoices
		WHERE booking_id = $1
	`

	var invoice entity.Invoice
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&invoice.ID,
		&invoice.BookingID,
		&invoice.InvoiceNumber,
		&invoice.TotalAmount,
		&invoice.GeneratedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find invoice for booking %s: %w", bookingID, err)
	}

	return &invoice, nil
}
