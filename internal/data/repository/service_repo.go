package repository

import (
	"context"
	"fmt"

	"home-fixture/internal/data/entity"
	"home-fixture/pkg/database"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ServiceFilter narrows SearchServices; nil fields are ignored.
type ServiceFilter struct {
	CategoryID *uuid.UUID
	MaxPrice   *float64
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindActive(ctx context.Context) ([]*entity.Service, error)
	Search(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)
}

type serviceRepository struct {
	db      database.PgxIface
	log     *zap.Logger
	dialect goqu.DialectWrapper
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:      db,
		log:     log.With(zap.String("repository", "service")),
		dialect: goqu.Dialect("postgres"),
	}
}

var serviceColumns = []any{
	"id", "category_id", "name", "base_price", "duration",
	"description", "is_active", "created_at", "updated_at",
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, category_id, name, base_price, duration,
		                      description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.CategoryID,
		service.Name,
		service.BasePrice,
		service.Duration,
		service.Description,
		service.IsActive,
		service.CreatedAt,
		service.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create service", zap.Error(err), zap.String("name", service.Name))
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query, args, err := r.dialect.From("services").
		Select(serviceColumns...).
		Where(goqu.C("id").Eq(id.String())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build service query: %w", err)
	}

	var service entity.Service
	err = scanService(r.db.QueryRow(ctx, query, args...), &service)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID", zap.Error(err), zap.String("service_id", id.String()))
		return nil, fmt.Errorf("find service by ID %s: %w", id, err)
	}

	return &service, nil
}

func (r *serviceRepository) FindActive(ctx context.Context) ([]*entity.Service, error) {
	return r.Search(ctx, ServiceFilter{})
}

// Search returns active services matching the filter, cheapest first.
func (r *serviceRepository) Search(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error) {
	ds := r.dialect.From("services").
		Select(serviceColumns...).
		Where(goqu.C("is_active").IsTrue())

	if filter.CategoryID != nil {
		ds = ds.Where(goqu.C("category_id").Eq(filter.CategoryID.String()))
	}
	if filter.MaxPrice != nil {
		ds = ds.Where(goqu.C("base_price").Lte(*filter.MaxPrice))
	}

	query, args, err := ds.Order(goqu.C("base_price").Asc(), goqu.C("name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build service search: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search services", zap.Error(err))
		return nil, fmt.Errorf("search services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var service entity.Service
		if err := scanService(rows, &service); err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &service)
	}

	return services, rows.Err()
}

func scanService(row pgx.Row, service *entity.Service) error {
	return row.Scan(
		&service.ID,
		&service.CategoryID,
		&service.Name,
		&service.BasePrice,
		&service.Duration,
		&service.Description,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
}
