package entity

type UserRole string

const (
	RoleCustomer     UserRole = "customer"
	RoleProfessional UserRole = "professional"
	RoleAdmin        UserRole = "admin"
)

type User struct {
	Base
	Username      string   `db:"username"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	Phone         *string  `db:"phone"`
	Address       *string  `db:"address"`
	Role          UserRole `db:"role"`
	IsVerified    bool     `db:"is_verified"`
	TermsAccepted bool     `db:"terms_accepted"`
	IsActive      bool     `db:"is_active"`
}
