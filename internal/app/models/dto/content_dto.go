package dto

import "time"

// CreateResourceRequest represents a request to publish an
// educational resource. The author is the authenticated user.
type CreateResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	SkillLevel  string `json:"skillLevel" binding:"required,oneof=beginner intermediate advanced"`
	Discipline  string `json:"discipline" binding:"required"`
	Duration    string `json:"duration"`
	Rating      int    `json:"rating" binding:"min=0,max=5"`
	RatingCount int    `json:"ratingCount"`
	URL         string `json:"url" binding:"required"`
}

// CreateBowlRequest represents a request to open a discussion bowl
type CreateBowlRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Discipline  string `json:"discipline" binding:"required"`
}

// CreateTopicRequest represents a request to start a topic within a
// bowl. The bowl id comes from the route, the author from the session.
type CreateTopicRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateJobListingRequest represents a request to post a job listing
type CreateJobListingRequest struct {
	Title           string     `json:"title" binding:"required"`
	Company         string     `json:"company" binding:"required"`
	Location        string     `json:"location" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Requirements    string     `json:"requirements" binding:"required"`
	Discipline      string     `json:"discipline" binding:"required"`
	ExperienceLevel string     `json:"experienceLevel" binding:"required"`
	SalaryRange     *string    `json:"salaryRange,omitempty"`
	ContactEmail    *string    `json:"contactEmail,omitempty"`
	ApplicationURL  *string    `json:"applicationUrl,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

// CreateMentorRequest represents a request to join the mentor
// directory. The user id comes from the session.
type CreateMentorRequest struct {
	Company           string   `json:"company" binding:"required"`
	Position          string   `json:"position" binding:"required"`
	YearsOfExperience int      `json:"yearsOfExperience" binding:"min=0"`
	Expertise         []string `json:"expertise" binding:"required,min=1"`
	Availability      *string  `json:"availability,omitempty"`
}

// CreateMessageRequest represents a request to send a direct message.
// The sender is always the authenticated user.
type CreateMessageRequest struct {
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
}
