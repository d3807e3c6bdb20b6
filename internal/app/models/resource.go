package models

import "time"

// Skill levels for resources
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
)

// Resource defines an educational resource based on the 'resources' table
type Resource struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	SkillLevel  string    `json:"skillLevel" db:"skill_level"`
	Discipline  string    `json:"discipline" db:"discipline"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
	Duration    string    `json:"duration" db:"duration"`
	Rating      int       `json:"rating" db:"rating"`
	RatingCount int       `json:"ratingCount" db:"rating_count"`
	URL         string    `json:"url" db:"url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
