package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	Rating    int       `db:"rating"` // 1-5
	Comment   string    `db:"comment"`
}

type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "OPEN"
	ComplaintResolved ComplaintStatus = "RESOLVED"
)

type Complaint struct {
	BaseSimple
	BookingID   uuid.UUID       `db:"booking_id"`
	Description string          `db:"description"`
	Status      ComplaintStatus `db:"status"`
}
