package models

import "time"

// JobListing defines a career opportunity based on the 'job_listings'
// table. Listing queries return active rows only; single fetch by id
// does not filter.
type JobListing struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Company         string     `json:"company" db:"company"`
	Location        string     `json:"location" db:"location"`
	Description     string     `json:"description" db:"description"`
	Requirements    string     `json:"requirements" db:"requirements"`
	Discipline      string     `json:"discipline" db:"discipline"`
	ExperienceLevel string     `json:"experienceLevel" db:"experience_level"`
	SalaryRange     *string    `json:"salaryRange,omitempty" db:"salary_range"`
	ContactEmail    *string    `json:"contactEmail,omitempty" db:"contact_email"`
	ApplicationURL  *string    `json:"applicationUrl,omitempty" db:"application_url"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
	IsActive        bool       `json:"isActive" db:"is_active"`
}
