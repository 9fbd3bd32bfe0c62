package entity

import (
	"time"

	"github.com/google/uuid"
)

type Professional struct {
	Base
	UserID             uuid.UUID  `db:"user_id"`
	CategoryID         *uuid.UUID `db:"category_id"`
	Bio                string     `db:"bio"`
	ExperienceYears    int        `db:"experience_years"`
	AvailabilityStatus bool       `db:"availability_status"`
	SafetyScore        float64    `db:"safety_score"`
	TotalJobs          int        `db:"total_jobs"`
	RehirePercentage   float64    `db:"rehire_percentage"`
	IsVerified         bool       `db:"is_verified"`
	ProfilePicture     *string    `db:"profile_picture"`

	// joined from users
	Username string `db:"username"`
}

// InCategory reports whether the professional is listed under categoryID.
func (p *Professional) InCategory(categoryID uuid.UUID) bool {
	return p.CategoryID != nil && *p.CategoryID == categoryID
}

type DocumentType string

const (
	DocumentTypeID          DocumentType = "ID"
	DocumentTypeLicense     DocumentType = "LICENSE"
	DocumentTypeCertificate DocumentType = "CERTIFICATE"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

type ProfessionalDocument struct {
	ID                 uuid.UUID          `db:"id"`
	ProfessionalID     uuid.UUID          `db:"professional_id"`
	DocumentType       DocumentType       `db:"document_type"`
	FilePath           string             `db:"file_path"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	UploadedAt         time.Time          `db:"uploaded_at"`
}
