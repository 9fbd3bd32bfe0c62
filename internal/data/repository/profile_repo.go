package repository

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	Update(ctx context.Context, profile *entity.UserProfile) error
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

// GetOrCreate returns the user's profile, inserting an empty one first if needed.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	insert := `
		INSERT INTO user_profiles (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, insert, uuid.New(), userID, time.Now()); err != nil {
		r.log.Error("Failed to ensure profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("ensure profile for user %s: %w", userID, err)
	}

	query := `
		SELECT id, user_id, full_name, address, latitude, longitude, city, pincode,
		       created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile entity.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Address,
		&profile.Latitude,
		&profile.Longitude,
		&profile.City,
		&profile.Pincode,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("load profile for user %s: %w", userID, err)
	}

	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET full_name = $2, address = $3, latitude = $4, longitude = $5,
		    city = $6, pincode = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.FullName,
		profile.Address,
		profile.Latitude,
		profile.Longitude,
		profile.City,
		profile.Pincode,
		profile.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update profile", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return fmt.Errorf("update profile %s: %w", profile.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", profile.ID)
	}

	return nil
}
