package usecase

import (
	"context"

	"home-fixture/internal/data/repository"
	"home-fixture/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// directoryCache keeps the cached home payload in step with professional writes.
type directoryCache struct {
	repo  *repository.Repository
	cache cache.Cache
	log   *zap.Logger
}

// refreshReputation recomputes the aggregates; failures are logged only.
func (d directoryCache) refreshReputation(ctx context.Context, professionalID uuid.UUID) {
	if err := d.repo.Professional.RefreshReputation(ctx, professionalID); err != nil {
		d.log.Warn("Failed to refresh reputation",
			zap.Error(err),
			zap.String("professional_id", professionalID.String()))
		return
	}
	d.invalidate(ctx)
}

func (d directoryCache) invalidate(ctx context.Context) {
	if err := d.cache.Delete(ctx, homeCacheKey); err != nil {
		d.log.Warn("Failed to invalidate home cache", zap.Error(err))
	}
}
