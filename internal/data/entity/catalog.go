package entity

import "github.com/google/uuid"

type Category struct {
	BaseSimple
	Name        string  `db:"name"`
	Icon        *string `db:"icon"`
	Description string  `db:"description"`
}

type Service struct {
	Base
	CategoryID  uuid.UUID `db:"category_id"`
	Name        string    `db:"name"`
	BasePrice   float64   `db:"base_price"`
	Duration    int       `db:"duration"` // minutes
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
}
