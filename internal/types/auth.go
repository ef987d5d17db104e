package types

// SignupRequest represents the request to register a student or recruiter account.
// Students supply Name, recruiters supply Company.
type SignupRequest struct {
	Role     Role   `json:"role" validate:"required,oneof=student recruiter"`
	Name     string `json:"name" validate:"required_if=Role student"`
	Company  string `json:"company" validate:"required_if=Role recruiter"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request. The role must match the account's role.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=student recruiter admin"`
}

// LoginResponse represents the login/signup response with user data and authentication token.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
