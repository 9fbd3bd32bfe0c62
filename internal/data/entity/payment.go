package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	Base
	BookingID uuid.UUID     `db:"booking_id"`
	Amount    float64       `db:"amount"`
	Method    PaymentMethod `db:"payment_method"`
	Status    PaymentStatus `db:"payment_status"`
	Details   *string       `db:"payment_details"`
	PaidAt    *time.Time    `db:"paid_at"`
}

type Invoice struct {
	ID            uuid.UUID `db:"id"`
	BookingID     uuid.UUID `db:"booking_id"`
	InvoiceNumber string    `db:"invoice_number"`
	TotalAmount   float64   `db:"total_amount"`
	GeneratedAt   time.Time `db:"generated_at"`
}
