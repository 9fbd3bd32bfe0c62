package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/cache"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	homeCacheKey     = "catalog:home"
	topProfessionals = 4
)

type CatalogService interface {
	Home(ctx context.Context) (*response.HomeResponse, error)
	CategoryProfessionals(ctx context.Context, categoryID string) (*response.CategoryProfessionalsResponse, error)
	ServiceProfessionals(ctx context.Context, serviceID string) (*response.ServiceProfessionalsResponse, error)
	SearchServices(ctx context.Context, req *request.SearchServicesRequest) ([]response.ServiceResponse, error)
	ListService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
}

type catalogService struct {
	repo  *repository.Repository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, c cache.Cache, ttl time.Duration, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		log:   log.With(zap.String("service", "catalog")),
	}
}

// Home is read through the cache; a broken cache only costs a database read.
func (s *catalogService) Home(ctx context.Context) (*response.HomeResponse, error) {
	if raw, err := s.cache.Get(ctx, homeCacheKey); err == nil {
		var cached response.HomeResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		s.log.Warn("Discarding unreadable home cache entry")
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("Failed to read home cache", zap.Error(err))
	}

	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}

	services, err := s.repo.Service.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to get services", zap.Error(err))
		return nil, fmt.Errorf("failed to get services")
	}

	pros, err := s.repo.Professional.FindTop(ctx, topProfessionals)
	if err != nil {
		s.log.Error("Failed to get top professionals", zap.Error(err))
		return nil, fmt.Errorf("failed to get professionals")
	}

	home := &response.HomeResponse{
		Categories:       response.CategoriesToResponse(categories),
		Services:         response.ServicesToResponse(services),
		TopProfessionals: response.ProfessionalsToResponse(pros),
	}

	if raw, err := json.Marshal(home); err == nil {
		if err := s.cache.Set(ctx, homeCacheKey, raw, s.ttl); err != nil {
			s.log.Warn("Failed to cache home payload", zap.Error(err))
		}
	}

	return home, nil
}

func (s *catalogService) CategoryProfessionals(ctx context.Context, categoryID string) (*response.CategoryProfessionalsResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID")
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to get category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	pros, err := s.repo.Professional.FindByCategory(ctx, category.ID)
	if err != nil {
		s.log.Error("Failed to get professionals", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to get professionals")
	}

	return &response.CategoryProfessionalsResponse{
		Category:      response.CategoryToResponse(category),
		Professionals: response.ProfessionalsToResponse(pros),
	}, nil
}

func (s *catalogService) ServiceProfessionals(ctx context.Context, serviceID string) (*response.ServiceProfessionalsResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID")
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get service", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to get service")
	}
	if service == nil {
		return nil, fmt.Errorf("service not found")
	}

	pros, err := s.repo.Professional.FindByCategory(ctx, service.CategoryID)
	if err != nil {
		s.log.Error("Failed to get professionals", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to get professionals")
	}

	return &response.ServiceProfessionalsResponse{
		Service:       response.ServiceToResponse(service),
		Professionals: response.ProfessionalsToResponse(pros),
	}, nil
}

func (s *catalogService) SearchServices(ctx context.Context, req *request.SearchServicesRequest) ([]response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filter := repository.ServiceFilter{MaxPrice: req.MaxPrice}
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID")
		}
		filter.CategoryID = &id
	}

	services, err := s.repo.Service.Search(ctx, filter)
	if err != nil {
		s.log.Error("Failed to search services", zap.Error(err))
		return nil, fmt.Errorf("failed to search services")
	}

	return response.ServicesToResponse(services), nil
}

func (s *catalogService) ListService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID")
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to get category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:  category.ID,
		Name:        req.Name,
		BasePrice:   req.BasePrice,
		Duration:    req.Duration,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err))
		return nil, fmt.Errorf("failed to create service")
	}

	directoryCache{repo: s.repo, cache: s.cache, log: s.log}.invalidate(ctx)

	s.log.Info("Service listed",
		zap.String("service_id", service.ID.String()),
		zap.String("category_id", req.CategoryID))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}
