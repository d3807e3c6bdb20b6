package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/engbowl/engbowl/internal/app/models"
)

const jobColumns = `id, title, company, location, description, requirements, discipline, experience_level, salary_range, contact_email, application_url, created_at, expires_at, is_active`

func scanJobListing(row pgx.Row, job *models.JobListing) error {
	return row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
		&job.Requirements, &job.Discipline, &job.ExperienceLevel,
		&job.SalaryRange, &job.ContactEmail, &job.ApplicationURL,
		&job.CreatedAt, &job.ExpiresAt, &job.IsActive)
}

func (s *PostgresStorage) queryJobListings(ctx context.Context, sql string, args ...any) ([]models.JobListing, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying job listings: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobListing{}
	for rows.Next() {
		var job models.JobListing
		if err := scanJobListing(rows, &job); err != nil {
			return nil, fmt.Errorf("error scanning job listing row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job listing rows: %w", err)
	}
	return jobs, nil
}

// GetJobListings lists active job listings ordered by insertion
func (s *PostgresStorage) GetJobListings(ctx context.Context) ([]models.JobListing, error) {
	return s.queryJobListings(ctx, `
		SELECT `+jobColumns+`
		FROM job_listings
		WHERE is_active = true
		ORDER BY id`)
}

// GetJobListingsByDiscipline lists active job listings matching the
// discipline case-insensitively.
func (s *PostgresStorage) GetJobListingsByDiscipline(ctx context.Context, discipline string) ([]models.JobListing, error) {
	return s.queryJobListings(ctx, `
		SELECT `+jobColumns+`
		FROM job_listings
		WHERE is_active = true AND LOWER(discipline) = LOWER($1)
		ORDER BY id`, discipline)
}

// GetJobListingByID retrieves a listing regardless of active flag
func (s *PostgresStorage) GetJobListingByID(ctx context.Context, id int64) (*models.JobListing, error) {
	var job models.JobListing
	err := scanJobListing(s.db.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM job_listings
		WHERE id = $1`, id), &job)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning job listing row: %w", err)
	}
	return &job, nil
}

// CreateJobListing inserts a new job listing
func (s *PostgresStorage) CreateJobListing(ctx context.Context, job *models.JobListing) (*models.JobListing, error) {
	stored := *job
	err := s.db.QueryRow(ctx, `
		INSERT INTO job_listings (title, company, location, description, requirements, discipline, experience_level, salary_range, contact_email, application_url, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`,
		job.Title, job.Company, job.Location, job.Description, job.Requirements,
		job.Discipline, job.ExperienceLevel, job.SalaryRange, job.ContactEmail,
		job.ApplicationURL, job.ExpiresAt, job.IsActive).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating job listing: %w", err)
	}
	return &stored, nil
}

const mentorColumns = `id, user_id, company, position, years_of_experience, expertise, availability, is_verified, rating, rating_count`

func scanMentor(row pgx.Row, mentor *models.Mentor) error {
	return row.Scan(
		&mentor.ID, &mentor.UserID, &mentor.Company, &mentor.Position,
		&mentor.YearsOfExperience, &mentor.Expertise, &mentor.Availability,
		&mentor.IsVerified, &mentor.Rating, &mentor.RatingCount)
}

func (s *PostgresStorage) queryMentors(ctx context.Context, sql string, args ...any) ([]models.Mentor, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying mentors: %w", err)
	}
	defer rows.Close()

	mentors := []models.Mentor{}
	for rows.Next() {
		var mentor models.Mentor
		if err := scanMentor(rows, &mentor); err != nil {
			return nil, fmt.Errorf("error scanning mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentor rows: %w", err)
	}
	return mentors, nil
}

// GetMentors lists all mentors ordered by insertion
func (s *PostgresStorage) GetMentors(ctx context.Context) ([]models.Mentor, error) {
	return s.queryMentors(ctx, `
		SELECT `+mentorColumns+`
		FROM mentors
		ORDER BY id`)
}

// GetMentorsByExpertise lists mentors where any expertise tag
// contains the given term, case-insensitively. The term is a literal
// substring, never a pattern.
func (s *PostgresStorage) GetMentorsByExpertise(ctx context.Context, expertise string) ([]models.Mentor, error) {
	return s.queryMentors(ctx, `
		SELECT `+mentorColumns+`
		FROM mentors
		WHERE EXISTS (
			SELECT 1 FROM unnest(expertise) AS tag
			WHERE tag ILIKE '%' || $1 || '%'
		)
		ORDER BY id`, escapeLikeTerm(expertise))
}

// escapeLikeTerm neutralizes LIKE/ILIKE metacharacters so the search
// term matches literally.
func escapeLikeTerm(term string) string {
	return likeEscaper.Replace(term)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetMentorByID retrieves a single mentor, (nil, nil) when absent
func (s *PostgresStorage) GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error) {
	var mentor models.Mentor
	err := scanMentor(s.db.QueryRow(ctx, `
		SELECT `+mentorColumns+`
		FROM mentors
		WHERE id = $1`, id), &mentor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning mentor row: %w", err)
	}
	return &mentor, nil
}

// CreateMentor inserts a new mentor profile
func (s *PostgresStorage) CreateMentor(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error) {
	stored := *mentor
	err := s.db.QueryRow(ctx, `
		INSERT INTO mentors (user_id, company, position, years_of_experience, expertise, availability, is_verified, rating, rating_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		mentor.UserID, mentor.Company, mentor.Position, mentor.YearsOfExperience,
		mentor.Expertise, mentor.Availability, mentor.IsVerified,
		mentor.Rating, mentor.RatingCount).
		Scan(&stored.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating mentor: %w", err)
	}
	return &stored, nil
}
