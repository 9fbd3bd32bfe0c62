package request

type UpdateCustomerProfileRequest struct {
	FullName  string   `json:"full_name" validate:"required,max=255"`
	Address   string   `json:"address" validate:"required,max=500"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	City      *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Pincode   *string  `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
}

type UpdateProfessionalProfileRequest struct {
	CategoryID         *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Bio                string  `json:"bio" validate:"max=2000"`
	ExperienceYears    int     `json:"experience_years" validate:"gte=0,lte=70"`
	AvailabilityStatus *bool   `json:"availability_status,omitempty"`
	ProfilePicture     *string `json:"profile_picture,omitempty" validate:"omitempty,url"`
}

type UploadDocumentRequest struct {
	DocumentType string `validate:"required,oneof=ID LICENSE CERTIFICATE"`
}
