package request

type RegisterRequest struct {
	Username      string  `json:"username" validate:"required,min=3,max=150"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Address       *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Role          string  `json:"role" validate:"required,oneof=customer professional"`
	TermsAccepted bool    `json:"terms_accepted"`
}

// LoginRequest accepts either the username or the e-mail address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
