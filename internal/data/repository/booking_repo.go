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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	FindByProfessionalID(ctx context.Context, professionalID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByProfessionalID(ctx context.Context, professionalID uuid.UUID) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// ExistsPendingDuplicate reports whether the same request is already waiting on the professional.
	ExistsPendingDuplicate(ctx context.Context, booking *entity.Booking) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_id, professional_id, service_id, booking_date, time_slot,
	service_address, requirements, status, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, customer_id, professional_id, service_id, booking_date, time_slot,
		                      service_address, requirements, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.ProfessionalID,
		booking.ServiceID,
		booking.BookingDate,
		booking.TimeSlot,
		booking.ServiceAddress,
		booking.Requirements,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", booking.CustomerID.String()),
			zap.String("professional_id", booking.ProfessionalID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := scanBooking(r.db.QueryRow(ctx, query, id), &booking)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1
		ORDER BY booking_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.findMany(ctx, query, customerID, limit, offset)
}

func (r *bookingRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings WHERE customer_id = $1`, customerID)
}

func (r *bookingRepository) FindByProfessionalID(ctx context.Context, professionalID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE professional_id = $1
		ORDER BY booking_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.findMany(ctx, query, professionalID, limit, offset)
}

func (r *bookingRepository) CountByProfessionalID(ctx context.Context, professionalID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings WHERE professional_id = $1`, professionalID)
}

func (r *bookingRepository) findMany(ctx context.Context, query string, ownerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings for %s: %w", ownerID, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		if err := scanBooking(rows, &booking); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) count(ctx context.Context, query string, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return 0, fmt.Errorf("count bookings for %s: %w", ownerID, err)
	}
	return count, nil
}

func (r *bookingRepository) ExistsPendingDuplicate(ctx context.Context, booking *entity.Booking) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE customer_id = $1
			  AND professional_id = $2
			  AND service_id IS NOT DISTINCT FROM $3
			  AND booking_date = $4
			  AND time_slot = $5
			  AND status = 'PENDING'
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query,
		booking.CustomerID,
		booking.ProfessionalID,
		booking.ServiceID,
		booking.BookingDate,
		booking.TimeSlot,
	).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check duplicate booking", zap.Error(err))
		return false, fmt.Errorf("check duplicate booking: %w", err)
	}

	return exists, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, requirements = $3, service_address = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Status,
		booking.Requirements,
		booking.ServiceAddress,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID)
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status, time.Now())
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	return nil
}

func scanBooking(row pgx.Row, booking *entity.Booking) error {
	return row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ProfessionalID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.TimeSlot,
		&booking.ServiceAddress,
		&booking.Requirements,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
}
