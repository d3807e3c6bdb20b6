package storage

import (
	"time"

	"github.com/engbowl/engbowl/internal/app/models"
)

// seed loads the demo dataset into a fresh ephemeral store. Records
// go through the regular create paths, so bowls start with zeroed
// counters and every entity gets a real id and createdAt.
func (s *MemoryStorage) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	bowls := []models.DiscussionBowl{
		{
			Name:        "Software Engineering",
			Description: "Discussions about software development, coding practices, and career paths",
			Discipline:  "Computer Engineering",
			IsActive:    true,
		},
		{
			Name:        "Mechanical Engineering",
			Description: "Discussions about mechanical design, thermal systems, and industry trends",
			Discipline:  "Mechanical Engineering",
			IsActive:    true,
		},
		{
			Name:        "Electrical Engineering",
			Description: "Discussions about circuits, power systems, and electrical design",
			Discipline:  "Electrical Engineering",
			IsActive:    true,
		},
	}
	for i := range bowls {
		s.createBowlLocked(&bowls[i])
	}

	resources := []models.Resource{
		{
			Title:       "Introduction to Python for Engineers",
			Description: "Learn the fundamentals of Python programming with a focus on engineering applications and problem-solving.",
			SkillLevel:  models.SkillLevelBeginner,
			Discipline:  "Computer Engineering",
			AuthorID:    1,
			Duration:    "3.5 hours",
			Rating:      4,
			RatingCount: 120,
			URL:         "https://example.com/intro-python",
		},
		{
			Title:       "Circuit Design for IoT Applications",
			Description: "Learn how to design efficient and practical circuits for Internet of Things devices with real-world applications.",
			SkillLevel:  models.SkillLevelIntermediate,
			Discipline:  "Electrical Engineering",
			AuthorID:    2,
			Duration:    "5 hours",
			Rating:      5,
			RatingCount: 85,
			URL:         "https://example.com/iot-circuits",
		},
		{
			Title:       "Machine Learning for Predictive Maintenance",
			Description: "Advanced course on implementing ML algorithms to predict equipment failures and optimize maintenance schedules.",
			SkillLevel:  models.SkillLevelAdvanced,
			Discipline:  "Data Science",
			AuthorID:    3,
			Duration:    "8 hours",
			Rating:      5,
			RatingCount: 67,
			URL:         "https://example.com/ml-maintenance",
		},
	}
	for i := range resources {
		s.createResourceLocked(&resources[i])
	}

	inTwoMonths := time.Now().AddDate(0, 2, 0)
	inOneMonth := time.Now().AddDate(0, 1, 0)
	jobs := []models.JobListing{
		{
			Title:           "Software Engineer Intern",
			Company:         "TechCorp",
			Location:        "San Francisco, CA",
			Description:     "Looking for a software engineering intern to join our team for the summer.",
			Requirements:    "Currently pursuing a degree in Computer Science or related field. Knowledge of JavaScript and React.",
			Discipline:      "Computer Engineering",
			ExperienceLevel: "Entry Level",
			SalaryRange:     strPtr("$20-25/hour"),
			ContactEmail:    strPtr("careers@techcorp.com"),
			ApplicationURL:  strPtr("https://techcorp.com/careers"),
			ExpiresAt:       &inTwoMonths,
			IsActive:        true,
		},
		{
			Title:           "Mechanical Design Engineer",
			Company:         "Engineering Solutions Inc.",
			Location:        "Boston, MA",
			Description:     "Join our team designing the next generation of mechanical systems.",
			Requirements:    "BS in Mechanical Engineering. Experience with CAD software, preferably SolidWorks.",
			Discipline:      "Mechanical Engineering",
			ExperienceLevel: "Mid Level",
			SalaryRange:     strPtr("$80,000-95,000/year"),
			ContactEmail:    strPtr("hr@engsolve.com"),
			ApplicationURL:  strPtr("https://engsolve.com/jobs"),
			ExpiresAt:       &inOneMonth,
			IsActive:        true,
		},
	}
	for i := range jobs {
		s.createJobLocked(&jobs[i])
	}
}

func strPtr(s string) *string {
	return &s
}
