package models

// Mentor defines a professional mentor based on the 'mentors' table.
// Expertise is an ordered list of free-text skill tags. Mentors carry
// no createdAt of their own.
type Mentor struct {
	ID                int64    `json:"id" db:"id"`
	UserID            int64    `json:"userId" db:"user_id"`
	Company           string   `json:"company" db:"company"`
	Position          string   `json:"position" db:"position"`
	YearsOfExperience int      `json:"yearsOfExperience" db:"years_of_experience"`
	Expertise         []string `json:"expertise" db:"expertise"`
	Availability      *string  `json:"availability,omitempty" db:"availability"`
	IsVerified        bool     `json:"isVerified" db:"is_verified"`
	Rating            *int     `json:"rating,omitempty" db:"rating"`
	RatingCount       *int     `json:"ratingCount,omitempty" db:"rating_count"`
	User              *User    `json:"user,omitempty"` // Relation, no db tag
}
