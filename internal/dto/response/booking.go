package response

import (
	"time"

	"home-fixture/internal/data/entity"
)

type BookingResponse struct {
	ID             string               `json:"id"`
	CustomerID     string               `json:"customer_id"`
	ProfessionalID string               `json:"professional_id"`
	ServiceID      *string              `json:"service_id,omitempty"`
	BookingDate    string               `json:"booking_date"`
	TimeSlot       string               `json:"time_slot"`
	ServiceAddress *string              `json:"service_address,omitempty"`
	Requirements   *string              `json:"requirements,omitempty"`
	Status         entity.BookingStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type PaymentResponse struct {
	ID        string               `json:"id"`
	BookingID string               `json:"booking_id"`
	Amount    float64              `json:"amount"`
	Method    entity.PaymentMethod `json:"payment_method,omitempty"`
	Status    entity.PaymentStatus `json:"payment_status"`
	Details   *string              `json:"payment_details,omitempty"`
	PaidAt    *time.Time           `json:"paid_at,omitempty"`
}

type InvoiceResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	InvoiceNumber string    `json:"invoice_number"`
	TotalAmount   float64   `json:"total_amount"`
	GeneratedAt   time.Time `json:"generated_at"`
}

type JobDetailsResponse struct {
	Booking BookingResponse  `json:"booking"`
	Payment *PaymentResponse `json:"payment,omitempty"`
	Review  *ReviewResponse  `json:"review,omitempty"`
	Invoice *InvoiceResponse `json:"invoice,omitempty"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:             b.ID.String(),
		CustomerID:     b.CustomerID.String(),
		ProfessionalID: b.ProfessionalID.String(),
		BookingDate:    b.BookingDate.UTC().Format(time.DateOnly),
		TimeSlot:       b.TimeSlot,
		ServiceAddress: b.ServiceAddress,
		Requirements:   b.Requirements,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	if b.ServiceID != nil {
		id := b.ServiceID.String()
		resp.ServiceID = &id
	}

	return resp
}

func BookingsToResponse(items []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, item := range items {
		out = append(out, BookingToResponse(item))
	}
	return out
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		BookingID: p.BookingID.String(),
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    p.Status,
		Details:   p.Details,
		PaidAt:    p.PaidAt,
	}
}

func InvoiceToResponse(i *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID.String(),
		BookingID:     i.BookingID.String(),
		InvoiceNumber: i.InvoiceNumber,
		TotalAmount:   i.TotalAmount,
		GeneratedAt:   i.GeneratedAt,
	}
}

func NewJobDetailsResponse(b *entity.Booking, payment *entity.Payment, review *entity.Review, invoice *entity.Invoice) JobDetailsResponse {
	resp := JobDetailsResponse{Booking: BookingToResponse(b)}

	if payment != nil {
		p := PaymentToResponse(payment)
		resp.Payment = &p
	}
	if review != nil {
		r := ReviewToResponse(review)
		resp.Review = &r
	}
	if invoice != nil {
		i := InvoiceToResponse(invoice)
		resp.Invoice = &i
	}

	return resp
}
