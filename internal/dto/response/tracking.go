package response

import (
	"time"

	"home-fixture/internal/data/entity"
)

type TrackingStep struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

type TrackingResponse struct {
	BookingID     string                `json:"booking_id"`
	BookingStatus entity.BookingStatus  `json:"booking_status"`
	Latitude      float64               `json:"latitude"`
	Longitude     float64               `json:"longitude"`
	Status        entity.TrackingStatus `json:"status"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Steps         []TrackingStep        `json:"steps"`
}

// NewTrackingResponse derives the five-step checklist from the booking and tracking states.
func NewTrackingResponse(b *entity.Booking, t *entity.JobTracking) TrackingResponse {
	completed := b.Status == entity.BookingStatusCompleted
	confirmed := b.Status == entity.BookingStatusConfirmed || completed
	arrived := t.Status == entity.TrackingArrived || completed
	onTheWay := t.Status == entity.TrackingOnTheWay || arrived

	return TrackingResponse{
		BookingID:     b.ID.String(),
		BookingStatus: b.Status,
		Latitude:      t.Latitude,
		Longitude:     t.Longitude,
		Status:        t.Status,
		UpdatedAt:     t.UpdatedAt,
		Steps: []TrackingStep{
			{ID: string(entity.BookingStatusPending), Label: "Booking Received", Completed: true},
			{ID: string(entity.BookingStatusConfirmed), Label: "Pro Confirmed", Completed: confirmed},
			{ID: string(entity.TrackingOnTheWay), Label: "On the Way", Completed: onTheWay},
			{ID: string(entity.TrackingArrived), Label: "Work in Progress", Completed: arrived},
			{ID: string(entity.BookingStatusCompleted), Label: "Service Finished", Completed: completed},
		},
	}
}
