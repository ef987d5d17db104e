package types

// Role identifies what a user can do on the board.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// User is a stored account. PasswordHash never leaves the service layer;
// use Public for API responses.
type User struct {
	ID           string   `json:"id"`
	Role         Role     `json:"role"`
	Name         string   `json:"name,omitempty"`
	Company      string   `json:"company,omitempty"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"passwordHash,omitempty"`
	Active       bool     `json:"active"`
	ResumeURL    string   `json:"resumeUrl,omitempty"`
	PortfolioURL string   `json:"portfolioUrl,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

// Public returns a copy of the user without credentials.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// DisplayName returns the name shown next to the user's postings.
func (u User) DisplayName() string {
	if u.Company != "" {
		return u.Company
	}
	return u.Name
}

// SearchableFields returns the non-empty profile fields matched by applicant keyword search.
func (u User) SearchableFields() []string {
	fields := make([]string, 0, 4)
	for _, f := range []string{u.Name, u.Email, u.ResumeURL, u.PortfolioURL} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// ProfileUpdate carries the editable student profile fields.
// Skills is free-form text and is tokenized on save.
type ProfileUpdate struct {
	Name         string `json:"name" validate:"required"`
	ResumeURL    string `json:"resumeUrl" validate:"omitempty,url"`
	PortfolioURL string `json:"portfolioUrl" validate:"omitempty,url"`
	Skills       string `json:"skills"`
}
