package request

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}

type CreateComplaintRequest struct {
	Description string `json:"description" validate:"required,max=5000"`
}
