package repository

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/pkg/database"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfessionalRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Professional, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Professional, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Professional, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Professional, error)
	FindTop(ctx context.Context, limit uint) ([]*entity.Professional, error)
	Update(ctx context.Context, pro *entity.Professional) error

	// RefreshReputation recomputes total_jobs, safety_score and rehire_percentage.
	RefreshReputation(ctx context.Context, id uuid.UUID) error
}

type professionalRepository struct {
	db      database.PgxIface
	log     *zap.Logger
	dialect goqu.DialectWrapper
}

func NewProfessionalRepository(db database.PgxIface, log *zap.Logger) ProfessionalRepository {
	return &professionalRepository{
		db:      db,
		log:     log.With(zap.String("repository", "professional")),
		dialect: goqu.Dialect("postgres"),
	}
}

func (r *professionalRepository) selectProfessionals() *goqu.SelectDataset {
	return r.dialect.From(goqu.T("professionals").As("p")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("p.user_id")))).
		Select(
			"p.id", "p.user_id", "p.category_id", "p.bio", "p.experience_years",
			"p.availability_status", "p.safety_score", "p.total_jobs",
			"p.rehire_percentage", "p.is_verified", "p.profile_picture",
			"p.created_at", "p.updated_at", "u.username",
		)
}

func (r *professionalRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Professional, error) {
	insert := `
		INSERT INTO professionals (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, insert, uuid.New(), userID, time.Now()); err != nil {
		r.log.Error("Failed to ensure professional", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("ensure professional for user %s: %w", userID, err)
	}

	pro, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pro == nil {
		return nil, fmt.Errorf("professional for user %s not found", userID)
	}

	return pro, nil
}

func (r *professionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Professional, error) {
	return r.findOne(ctx, goqu.I("p.id").Eq(id.String()))
}

func (r *professionalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Professional, error) {
	return r.findOne(ctx, goqu.I("p.user_id").Eq(userID.String()))
}

func (r *professionalRepository) findOne(ctx context.Context, where exp.Expression) (*entity.Professional, error) {
	query, args, err := r.selectProfessionals().Where(where).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build professional query: %w", err)
	}

	var pro entity.Professional
	err = scanProfessional(r.db.QueryRow(ctx, query, args...), &pro)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find professional", zap.Error(err))
		return nil, fmt.Errorf("find professional: %w", err)
	}

	return &pro, nil
}

func (r *professionalRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Professional, error) {
	ds := r.selectProfessionals().
		Where(goqu.I("p.category_id").Eq(categoryID.String())).
		Order(goqu.I("p.safety_score").Desc(), goqu.I("u.username").Asc())

	return r.findMany(ctx, ds)
}

func (r *professionalRepository) FindTop(ctx context.Context, limit uint) ([]*entity.Professional, error) {
	ds := r.selectProfessionals().
		Order(goqu.I("p.safety_score").Desc(), goqu.I("p.total_jobs").Desc()).
		Limit(limit)

	return r.findMany(ctx, ds)
}

func (r *professionalRepository) findMany(ctx context.Context, ds *goqu.SelectDataset) ([]*entity.Professional, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build professional query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list professionals", zap.Error(err))
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	var pros []*entity.Professional
	for rows.Next() {
		var pro entity.Professional
		if err := scanProfessional(rows, &pro); err != nil {
			r.log.Error("Failed to scan professional row", zap.Error(err))
			return nil, fmt.Errorf("scan professional row: %w", err)
		}
		pros = append(pros, &pro)
	}

	return pros, rows.Err()
}

func (r *professionalRepository) Update(ctx context.Context, pro *entity.Professional) error {
	query := `
		UPDATE professionals
		SET category_id = $2, bio = $3, experience_years = $4,
		    availability_status = $5, profile_picture = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pro.ID,
		pro.CategoryID,
		pro.Bio,
		pro.ExperienceYears,
		pro.AvailabilityStatus,
		pro.ProfilePicture,
		pro.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update professional", zap.Error(err), zap.String("professional_id", pro.ID.String()))
		return fmt.Errorf("update professional %s: %w", pro.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("professional %s not found", pro.ID)
	}

	return nil
}

func (r *professionalRepository) RefreshReputation(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE professionals p
		SET total_jobs = stats.total_jobs,
		    safety_score = stats.safety_score,
		    rehire_percentage = stats.rehire_percentage,
		    updated_at = NOW()
		FROM (
			SELECT
				(SELECT COUNT(*) FROM bookings
				  WHERE professional_id = $1 AND status = 'COMPLETED') AS total_jobs,
				(SELECT COALESCE(ROUND(AVG(rv.rating), 2), 0)
				   FROM reviews rv JOIN bookings b ON b.id = rv.booking_id
				  WHERE b.professional_id = $1) AS safety_score,
				(SELECT COALESCE(ROUND(100.0 * COUNT(*) FILTER (WHERE jobs > 1) / NULLIF(COUNT(*), 0), 2), 0)
				   FROM (SELECT customer_id, COUNT(*) AS jobs FROM bookings
				          WHERE professional_id = $1 AND status = 'COMPLETED'
				          GROUP BY customer_id) c) AS rehire_percentage
		) stats
		WHERE p.id = $1
	`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to refresh reputation", zap.Error(err), zap.String("professional_id", id.String()))
		return fmt.Errorf("refresh reputation for %s: %w", id, err)
	}

	return nil
}

func scanProfessional(row pgx.Row, pro *entity.Professional) error {
	return row.Scan(
		&pro.ID,
		&pro.UserID,
		&pro.CategoryID,
		&pro.Bio,
		&pro.ExperienceYears,
		&pro.AvailabilityStatus,
		&pro.SafetyScore,
		&pro.TotalJobs,
		&pro.RehirePercentage,
		&pro.IsVerified,
		&pro.ProfilePicture,
		&pro.CreatedAt,
		&pro.UpdatedAt,
		&pro.Username,
	)
}
