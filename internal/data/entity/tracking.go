package entity

import "github.com/google/uuid"

type TrackingStatus string

const (
	TrackingOnTheWay TrackingStatus = "ON_THE_WAY"
	TrackingArrived  TrackingStatus = "ARRIVED"
)

// Coordinates assigned when a tracking row is first created.
const (
	DefaultTrackingLatitude  = 12.9716
	DefaultTrackingLongitude = 77.5946
)

type JobTracking struct {
	Base
	BookingID uuid.UUID      `db:"booking_id"`
	Latitude  float64        `db:"latitude"`
	Longitude float64        `db:"longitude"`
	Status    TrackingStatus `db:"status"`
}
