package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus accepts any casing of a known status.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	status := BookingStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return status, true
	}
	return "", false
}

const (
	TimeSlotMorning   = "Morning"
	TimeSlotAfternoon = "Afternoon"
	TimeSlotEvening   = "Evening"
)

type Booking struct {
	Base
	CustomerID     uuid.UUID     `db:"customer_id"`
	ProfessionalID uuid.UUID     `db:"professional_id"`
	ServiceID      *uuid.UUID    `db:"service_id"`
	BookingDate    time.Time     `db:"booking_date"`
	TimeSlot       string        `db:"time_slot"`
	ServiceAddress *string       `db:"service_address"`
	Requirements   *string       `db:"requirements"`
	Status         BookingStatus `db:"status"`
}
