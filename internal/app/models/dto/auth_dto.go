package dto

// RegisterRequest represents a user registration request. Field-level
// rules beyond shape (university email predicate, password match) are
// enforced by the auth service.
type RegisterRequest struct {
	Username        string  `json:"username" binding:"required"`
	Password        string  `json:"password" binding:"required"`
	PasswordConfirm string  `json:"passwordConfirm" binding:"required"`
	Email           string  `json:"email" binding:"required"`
	DisplayName     string  `json:"displayName" binding:"required"`
	University      *string `json:"university,omitempty"`
	Discipline      *string `json:"discipline,omitempty"`
	GraduationYear  *int    `json:"graduationYear,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	IsAnonymous     bool    `json:"isAnonymous"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
