package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/data/repository/mocks"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryCache records writes so tests can observe read-through behavior.
type memoryCache struct {
	items   map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	return nil, cache.ErrCacheMiss
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.items, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func newTestCatalogService(c cache.Cache) (CatalogService, *mocks.Set) {
	repo, set := mocks.New()
	return NewCatalogService(repo, c, time.Minute, zap.NewNop()), set
}

func TestCatalogService_Home(t *testing.T) {
	ctx := context.Background()
	mem := newMemoryCache()
	svc, set := newTestCatalogService(mem)

	category := &entity.Category{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Plumbing"}
	service := &entity.Service{Base: entity.Base{ID: uuid.New()}, CategoryID: category.ID, Name: "Tap fix", BasePrice: 199}
	top := &entity.Professional{Base: entity.Base{ID: uuid.New()}, UserID: uuid.New(), SafetyScore: 4.8, Username: "asha"}

	set.Category.On("FindAll", mock.Anything).Return([]*entity.Category{category}, nil).Once()
	set.Service.On("FindActive", mock.Anything).Return([]*entity.Service{service}, nil).Once()
	set.Professional.On("FindTop", mock.Anything, uint(4)).Return([]*entity.Professional{top}, nil).Once()

	first, err := svc.Home(ctx)
	require.NoError(t, err)
	assert.Len(t, first.Categories, 1)
	assert.Len(t, first.TopProfessionals, 1)
	assert.Contains(t, mem.items, homeCacheKey)

	// served from cache; the repositories are not hit again
	second, err := svc.Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	set.AssertExpectations(t)
}

func TestCatalogService_HomeIgnoresCorruptCache(t *testing.T) {
	mem := newMemoryCache()
	mem.items[homeCacheKey] = []byte("{not json")
	svc, set := newTestCatalogService(mem)

	set.Category.On("FindAll", mock.Anything).Return(nil, nil)
	set.Service.On("FindActive", mock.Anything).Return(nil, nil)
	set.Professional.On("FindTop", mock.Anything, uint(4)).Return(nil, nil)

	home, err := svc.Home(context.Background())

	require.NoError(t, err)
	assert.Empty(t, home.Services)

	var cached response.HomeResponse
	require.NoError(t, json.Unmarshal(mem.items[homeCacheKey], &cached))
}

func TestCatalogService_CategoryProfessionals(t *testing.T) {
	ctx := context.Background()

	t.Run("lists professionals", func(t *testing.T) {
		svc, set := newTestCatalogService(cache.NewNoopCache())
		category := &entity.Category{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Cleaning"}

		set.Category.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		set.Professional.On("FindByCategory", mock.Anything, category.ID).Return([]*entity.Professional{
			{Base: entity.Base{ID: uuid.New()}, CategoryID: &category.ID},
		}, nil)

		resp, err := svc.CategoryProfessionals(ctx, category.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "Cleaning", resp.Category.Name)
		assert.Len(t, resp.Professionals, 1)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, set := newTestCatalogService(cache.NewNoopCache())
		id := uuid.New()
		set.Category.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.CategoryProfessionals(ctx, id.String())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newTestCatalogService(cache.NewNoopCache())

		_, err := svc.CategoryProfessionals(ctx, "plumbing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid")
	})
}

func TestCatalogService_ServiceProfessionals(t *testing.T) {
	svc, set := newTestCatalogService(cache.NewNoopCache())
	service := &entity.Service{Base: entity.Base{ID: uuid.New()}, CategoryID: uuid.New(), Name: "Deep clean"}

	set.Service.On("FindByID", mock.Anything, service.ID).Return(service, nil)
	set.Professional.On("FindByCategory", mock.Anything, service.CategoryID).Return(nil, nil)

	resp, err := svc.ServiceProfessionals(context.Background(), service.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "Deep clean", resp.Service.Name)
	assert.Empty(t, resp.Professionals)
}

func TestCatalogService_SearchServices(t *testing.T) {
	svc, set := newTestCatalogService(cache.NewNoopCache())
	categoryID := uuid.New()
	maxPrice := 300.0

	set.Service.On("Search", mock.Anything, repository.ServiceFilter{CategoryID: &categoryID, MaxPrice: &maxPrice}).
		Return([]*entity.Service{{Base: entity.Base{ID: uuid.New()}, CategoryID: categoryID, BasePrice: 250}}, nil)

	resp, err := svc.SearchServices(context.Background(), &request.SearchServicesRequest{
		CategoryID: categoryID.String(),
		MaxPrice:   &maxPrice,
	})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, 250.0, resp[0].BasePrice)
}

func TestCatalogService_ListService(t *testing.T) {
	mem := newMemoryCache()
	mem.items[homeCacheKey] = []byte("{}")
	svc, set := newTestCatalogService(mem)
	category := &entity.Category{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Electrical"}

	set.Category.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	set.Service.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Service) bool {
		return s.IsActive && s.CategoryID == category.ID && s.BasePrice == 350
	})).Return(nil)

	resp, err := svc.ListService(context.Background(), &request.CreateServiceRequest{
		CategoryID: category.ID.String(),
		Name:       "Fan install",
		BasePrice:  350,
		Duration:   45,
	})

	require.NoError(t, err)
	assert.Equal(t, "Fan install", resp.Name)
	assert.NotContains(t, mem.items, homeCacheKey)
	assert.Equal(t, []string{homeCacheKey}, mem.deleted)
}
