package response

import (
	"time"

	"home-fixture/internal/data/entity"
)

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        *string `json:"icon,omitempty"`
	Description string  `json:"description"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
}

type ProfessionalResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	Username           string  `json:"username,omitempty"`
	CategoryID         *string `json:"category_id,omitempty"`
	Bio                string  `json:"bio"`
	ExperienceYears    int     `json:"experience_years"`
	AvailabilityStatus bool    `json:"availability_status"`
	SafetyScore        float64 `json:"safety_score"`
	TotalJobs          int     `json:"total_jobs"`
	RehirePercentage   float64 `json:"rehire_percentage"`
	IsVerified         bool    `json:"is_verified"`
	ProfilePicture     *string `json:"profile_picture,omitempty"`
}

type DocumentResponse struct {
	ID                 string                    `json:"id"`
	DocumentType       entity.DocumentType       `json:"document_type"`
	FilePath           string                    `json:"file_path"`
	VerificationStatus entity.VerificationStatus `json:"verification_status"`
	UploadedAt         time.Time                 `json:"uploaded_at"`
}

type HomeResponse struct {
	Categories       []CategoryResponse     `json:"categories"`
	Services         []ServiceResponse      `json:"services"`
	TopProfessionals []ProfessionalResponse `json:"top_professionals"`
}

type CategoryProfessionalsResponse struct {
	Category      CategoryResponse       `json:"category"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

type ServiceProfessionalsResponse struct {
	Service       ServiceResponse        `json:"service"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

func CategoryToResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Icon:        c.Icon,
		Description: c.Description,
	}
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		CategoryID:  s.CategoryID.String(),
		Name:        s.Name,
		BasePrice:   s.BasePrice,
		Duration:    s.Duration,
		Description: s.Description,
	}
}

func ProfessionalToResponse(p *entity.Professional) ProfessionalResponse {
	resp := ProfessionalResponse{
		ID:                 p.ID.String(),
		UserID:             p.UserID.String(),
		Username:           p.Username,
		Bio:                p.Bio,
		ExperienceYears:    p.ExperienceYears,
		AvailabilityStatus: p.AvailabilityStatus,
		SafetyScore:        p.SafetyScore,
		TotalJobs:          p.TotalJobs,
		RehirePercentage:   p.RehirePercentage,
		IsVerified:         p.IsVerified,
		ProfilePicture:     p.ProfilePicture,
	}

	if p.CategoryID != nil {
		id := p.CategoryID.String()
		resp.CategoryID = &id
	}

	return resp
}

func DocumentToResponse(d *entity.ProfessionalDocument) DocumentResponse {
	return DocumentResponse{
		ID:                 d.ID.String(),
		DocumentType:       d.DocumentType,
		FilePath:           d.FilePath,
		VerificationStatus: d.VerificationStatus,
		UploadedAt:         d.UploadedAt,
	}
}

func CategoriesToResponse(items []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CategoryToResponse(item))
	}
	return out
}

func ServicesToResponse(items []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ServiceToResponse(item))
	}
	return out
}

func ProfessionalsToResponse(items []*entity.Professional) []ProfessionalResponse {
	out := make([]ProfessionalResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ProfessionalToResponse(item))
	}
	return out
}
