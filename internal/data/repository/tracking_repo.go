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

type TrackingRepository interface {
	// GetOrCreate inserts the default tracking row on first access.
	GetOrCreate(ctx context.Context, bookingID uuid.UUID) (*entity.JobTracking, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.JobTracking, error)
	Upsert(ctx context.Context, tracking *entity.JobTracking) error
	// MarkArrived is a no-op when the booking has no tracking row yet.
	MarkArrived(ctx context.Context, bookingID uuid.UUID) error
}

type trackingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTrackingRepository(db database.PgxIface, log *zap.Logger) TrackingRepository {
	return &trackingRepository{
		db:  db,
		log: log.With(zap.String("repository", "tracking")),
	}
}

func (r *trackingRepository) GetOrCreate(ctx context.Context, bookingID uuid.UUID) (*entity.JobTracking, error) {
	insert := `
		INSERT INTO job_trackings (id, booking_id, latitude, longitude, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (booking_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, insert,
		uuid.New(),
		bookingID,
		entity.DefaultTrackingLatitude,
		entity.DefaultTrackingLongitude,
		entity.TrackingOnTheWay,
		time.Now(),
	)
	if err != nil {
		r.log.Error("Failed to ensure tracking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("ensure tracking for booking %s: %w", bookingID, err)
	}

	tracking, err := r.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if tracking == nil {
		return nil, fmt.Errorf("tracking for booking %s not found", bookingID)
	}

	return tracking, nil
}

func (r *trackingRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.JobTracking, error) {
	query := `
		SELECT id, booking_id, latitude, longitude, status, created_at, updated_at
		FROM job_trackings
		WHERE booking_id = $1
	`

	var tracking entity.JobTracking
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&tracking.ID,
		&tracking.BookingID,
		&tracking.Latitude,
		&tracking.Longitude,
		&tracking.Status,
		&tracking.CreatedAt,
		&tracking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tracking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find tracking for booking %s: %w", bookingID, err)
	}

	return &tracking, nil
}

func (r *trackingRepository) Upsert(ctx context.Context, tracking *entity.JobTracking) error {
	query := `
		INSERT INTO job_trackings (id, booking_id, latitude, longitude, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (booking_id) DO UPDATE
		SET latitude = EXCLUDED.latitude,
		    longitude = EXCLUDED.longitude,
		    status = EXCLUDED.status,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		tracking.ID,
		tracking.BookingID,
		tracking.Latitude,
		tracking.Longitude,
		tracking.Status,
		tracking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert tracking", zap.Error(err), zap.String("booking_id", tracking.BookingID.String()))
		return fmt.Errorf("upsert tracking for booking %s: %w", tracking.BookingID, err)
	}

	return nil
}

func (r *trackingRepository) MarkArrived(ctx context.Context, bookingID uuid.UUID) error {
	query := `UPDATE job_trackings SET status = $2, updated_at = NOW() WHERE booking_id = $1`

	if _, err := r.db.Exec(ctx, query, bookingID, entity.TrackingArrived); err != nil {
		r.log.Error("Failed to mark tracking arrived", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("mark tracking arrived for booking %s: %w", bookingID, err)
	}

	return nil
}
