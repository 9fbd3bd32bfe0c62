package repository

import (
	"context"
	"fmt"

	"home-fixture/internal/data/entity"
	"home-fixture/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.ProfessionalDocument) error
	FindByProfessionalID(ctx context.Context, professionalID uuid.UUID) ([]*entity.ProfessionalDocument, error)
}

type documentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDocumentRepository(db database.PgxIface, log *zap.Logger) DocumentRepository {
	return &documentRepository{
		db:  db,
		log: log.With(zap.String("repository", "document")),
	}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.ProfessionalDocument) error {
	query := `
		INSERT INTO professional_documents (id, professional_id, document_type, file_path,
		                                    verification_status, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		doc.ID,
		doc.ProfessionalID,
		doc.DocumentType,
		doc.FilePath,
		doc.VerificationStatus,
		doc.UploadedAt,
	)
	if err != nil {
		r.log.Error("Failed to create document",
			zap.Error(err),
			zap.String("professional_id", doc.ProfessionalID.String()),
		)
		return fmt.Errorf("create document for professional %s: %w", doc.ProfessionalID, err)
	}

	return nil
}

func (r *documentRepository) FindByProfessionalID(ctx context.Context, professionalID uuid.UUID) ([]*entity.ProfessionalDocument, error) {
	query := `
		SELECT id, professional_id, document_type, file_path, verification_status, uploaded_at
		FROM professional_documents
		WHERE professional_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		r.log.Error("Failed to find documents", zap.Error(err), zap.String("professional_id", professionalID.String()))
		return nil, fmt.Errorf("find documents for professional %s: %w", professionalID, err)
	}
	defer rows.Close()

	var docs []*entity.ProfessionalDocument
	for rows.Next() {
		var doc entity.ProfessionalDocument
		if err := rows.Scan(
			&doc.ID,
			&doc.ProfessionalID,
			&doc.DocumentType,
			&doc.FilePath,
			&doc.VerificationStatus,
			&doc.UploadedAt,
		); err != nil {
			r.log.Error("Failed to scan document row", zap.Error(err))
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
