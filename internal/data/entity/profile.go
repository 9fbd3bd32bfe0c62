package entity

import "github.com/google/uuid"

// UserProfile holds the customer's service location.
type UserProfile struct {
	Base
	UserID    uuid.UUID `db:"user_id"`
	FullName  string    `db:"full_name"`
	Address   string    `db:"address"`
	Latitude  *float64  `db:"latitude"`
	Longitude *float64  `db:"longitude"`
	City      *string   `db:"city"`
	Pincode   *string   `db:"pincode"`
}
