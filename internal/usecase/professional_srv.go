package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/cache"
	"home-fixture/pkg/storage"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const documentDir = "pro_documents"

type ProfessionalService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfessionalResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfessionalProfileRequest) (*response.ProfessionalResponse, error)
	UploadDocument(ctx context.Context, userID uuid.UUID, req *request.UploadDocumentRequest, filename string, file io.Reader) (*response.DocumentResponse, error)
	ListDocuments(ctx context.Context, userID uuid.UUID) ([]response.DocumentResponse, error)
}

type professionalService struct {
	repo      *repository.Repository
	store     storage.FileStore
	directory directoryCache
	log       *zap.Logger
}

func NewProfessionalService(repo *repository.Repository, c cache.Cache, store storage.FileStore, log *zap.Logger) ProfessionalService {
	log = log.With(zap.String("service", "professional"))
	return &professionalService{
		repo:      repo,
		store:     store,
		directory: directoryCache{repo: repo, cache: c, log: log},
		log:       log,
	}
}

func (s *professionalService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfessionalResponse, error) {
	pro, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.ProfessionalToResponse(pro)
	return &resp, nil
}

func (s *professionalService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfessionalProfileRequest) (*response.ProfessionalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update professional profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pro, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID")
		}
		category, err := s.repo.Category.FindByID(ctx, categoryID)
		if err != nil {
			s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", *req.CategoryID))
			return nil, fmt.Errorf("failed to get category")
		}
		if category == nil {
			return nil, fmt.Errorf("category not found")
		}
		pro.CategoryID = &category.ID
	}

	pro.Bio = req.Bio
	pro.ExperienceYears = req.ExperienceYears
	if req.AvailabilityStatus != nil {
		pro.AvailabilityStatus = *req.AvailabilityStatus
	}
	if req.ProfilePicture != nil {
		pro.ProfilePicture = req.ProfilePicture
	}
	pro.UpdatedAt = time.Now()

	if err := s.repo.Professional.Update(ctx, pro); err != nil {
		s.log.Error("Failed to update professional profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}
	s.directory.invalidate(ctx)

	s.log.Info("Professional profile updated", zap.String("professional_id", pro.ID.String()))

	resp := response.ProfessionalToResponse(pro)
	return &resp, nil
}

func (s *professionalService) UploadDocument(ctx context.Context, userID uuid.UUID, req *request.UploadDocumentRequest, filename string, file io.Reader) (*response.DocumentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upload document validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pro, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.store.Save(ctx, documentDir, filename, file)
	if err != nil {
		s.log.Error("Failed to store document", zap.Error(err), zap.String("filename", filename))
		return nil, fmt.Errorf("failed to store document")
	}

	doc := &entity.ProfessionalDocument{
		ID:                 uuid.New(),
		ProfessionalID:     pro.ID,
		DocumentType:       entity.DocumentType(req.DocumentType),
		FilePath:           path,
		VerificationStatus: entity.VerificationPending,
		UploadedAt:         time.Now(),
	}

	if err := s.repo.Document.Create(ctx, doc); err != nil {
		s.log.Error("Failed to save document", zap.Error(err), zap.String("professional_id", pro.ID.String()))
		return nil, fmt.Errorf("failed to save document")
	}

	s.log.Info("Document uploaded",
		zap.String("professional_id", pro.ID.String()),
		zap.String("document_type", req.DocumentType),
		zap.String("path", path))

	resp := response.DocumentToResponse(doc)
	return &resp, nil
}

func (s *professionalService) ListDocuments(ctx context.Context, userID uuid.UUID) ([]response.DocumentResponse, error) {
	pro, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.Document.FindByProfessionalID(ctx, pro.ID)
	if err != nil {
		s.log.Error("Failed to get documents", zap.Error(err), zap.String("professional_id", pro.ID.String()))
		return nil, fmt.Errorf("failed to get documents")
	}

	out := make([]response.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, response.DocumentToResponse(d))
	}
	return out, nil
}

func (s *professionalService) profile(ctx context.Context, userID uuid.UUID) (*entity.Professional, error) {
	pro, err := s.repo.Professional.GetOrCreate(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get professional profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get professional profile")
	}
	return pro, nil
}
