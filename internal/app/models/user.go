package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64     `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Password       string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Email          string    `json:"email" db:"email"`
	DisplayName    string    `json:"displayName" db:"display_name"`
	University     *string   `json:"university,omitempty" db:"university"`
	Discipline     *string   `json:"discipline,omitempty" db:"discipline"`
	GraduationYear *int      `json:"graduationYear,omitempty" db:"graduation_year"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	IsAnonymous    bool      `json:"isAnonymous" db:"is_anonymous"`
	AvatarURL      *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// UserUpdate holds the mutable profile fields for a partial update.
// Nil fields are left untouched.
type UserUpdate struct {
	DisplayName    *string `json:"displayName,omitempty"`
	University     *string `json:"university,omitempty"`
	Discipline     *string `json:"discipline,omitempty"`
	GraduationYear *int    `json:"graduationYear,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	IsAnonymous    *bool   `json:"isAnonymous,omitempty"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
}
