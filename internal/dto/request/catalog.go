package request

type SearchServicesRequest struct {
	CategoryID string   `json:"category" validate:"omitempty,uuid"`
	MaxPrice   *float64 `json:"max_price" validate:"omitempty,gte=0"`
}

type CreateServiceRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,max=255"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	Duration    int     `json:"duration" validate:"required,min=1"`
	Description string  `json:"description" validate:"max=5000"`
}
