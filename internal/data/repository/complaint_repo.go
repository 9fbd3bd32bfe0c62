package repository

import (
	"context"
	"fmt"

	"home-fixture/internal/data/entity"
	"home-fixture/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Complaint, error)
}

type complaintRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewComplaintRepository(db database.PgxIface, log *zap.Logger) ComplaintRepository {
	return &complaintRepository{
		db:  db,
		log: log.With(zap.String("repository", "complaint")),
	}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	query := `
		INSERT INTO complaints (id, booking_id, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		complaint.ID,
		complaint.BookingID,
		complaint.Description,
		complaint.Status,
		complaint.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create complaint", zap.Error(err), zap.String("booking_id", complaint.BookingID.String()))
		return fmt.Errorf("create complaint for booking %s: %w", complaint.BookingID, err)
	}

	return nil
}

func (r *complaintRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Complaint, error) {
	query := `
		SELECT id, booking_id, description, status, created_at
		FROM complaints
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find complaints", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find complaints for booking %s: %w", bookingID, err)
	}
	defer rows.Close()

	var complaints []*entity.Complaint
	for rows.Next() {
		var complaint entity.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.BookingID,
			&complaint.Description,
			&complaint.Status,
			&complaint.CreatedAt,
		); err != nil {
			r.log.Error("Failed to scan complaint row", zap.Error(err))
			return nil, fmt.Errorf("scan complaint row: %w", err)
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, rows.Err()
}
