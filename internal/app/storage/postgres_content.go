package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/db"
)

const resourceColumns = `id, title, description, skill_level, discipline, author_id, duration, rating, rating_count, url, created_at`

func scanResource(row pgx.Row, res *models.Resource) error {
	return row.Scan(
		&res.ID, &res.Title, &res.Description, &res.SkillLevel, &res.Discipline,
		&res.AuthorID, &res.Duration, &res.Rating, &res.RatingCount, &res.URL, &res.CreatedAt)
}

func (s *PostgresStorage) queryResources(ctx context.Context, sql string, args ...any) ([]models.Resource, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		var res models.Resource
		if err := scanResource(rows, &res); err != nil {
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}
	return resources, nil
}

// GetResources lists all learning resources ordered by insertion
func (s *PostgresStorage) GetResources(ctx context.Context) ([]models.Resource, error) {
	return s.queryResources(ctx, `
		SELECT `+resourceColumns+`
		FROM resources
		ORDER BY id`)
}

// GetResourcesByDiscipline filters resources by discipline,
// case-insensitively.
func (s *PostgresStorage) GetResourcesByDiscipline(ctx context.Context, discipline string) ([]models.Resource, error) {
	return s.queryResources(ctx, `
		SELECT `+resourceColumns+`
		FROM resources
		WHERE LOWER(discipline) = LOWER($1)
		ORDER BY id`, discipline)
}

// GetResourcesBySkillLevel filters resources by skill level,
// case-insensitively.
func (s *PostgresStorage) GetResourcesBySkillLevel(ctx context.Context, skillLevel string) ([]models.Resource, error) {
	return s.queryResources(ctx, `
		SELECT `+resourceColumns+`
		FROM resources
		WHERE LOWER(skill_level) = LOWER($1)
		ORDER BY id`, skillLevel)
}

// GetResourceByID retrieves a single resource, (nil, nil) when absent
func (s *PostgresStorage) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	var res models.Resource
	err := scanResource(s.db.QueryRow(ctx, `
		SELECT `+resourceColumns+`
		FROM resources
		WHERE id = $1`, id), &res)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning resource row: %w", err)
	}
	return &res, nil
}

// CreateResource inserts a new learning resource
func (s *PostgresStorage) CreateResource(ctx context.Context, resource *models.Resource) (*models.Resource, error) {
	stored := *resource
	err := s.db.QueryRow(ctx, `
		INSERT INTO resources (title, description, skill_level, discipline, author_id, duration, rating, rating_count, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		resource.Title, resource.Description, resource.SkillLevel, resource.Discipline,
		resource.AuthorID, resource.Duration, resource.Rating, resource.RatingCount, resource.URL).
		Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating resource: %w", err)
	}
	return &stored, nil
}

const bowlColumns = `id, name, description, discipline, member_count, post_count, is_active, created_at`

func scanBowl(row pgx.Row, bowl *models.DiscussionBowl) error {
	return row.Scan(
		&bowl.ID, &bowl.Name, &bowl.Description, &bowl.Discipline,
		&bowl.MemberCount, &bowl.PostCount, &bowl.IsActive, &bowl.CreatedAt)
}

// GetDiscussionBowls lists all discussion bowls ordered by insertion
func (s *PostgresStorage) GetDiscussionBowls(ctx context.Context) ([]models.DiscussionBowl, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+bowlColumns+`
		FROM discussion_bowls
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying discussion bowls: %w", err)
	}
	defer rows.Close()

	bowls := []models.DiscussionBowl{}
	for rows.Next() {
		var bowl models.DiscussionBowl
		if err := scanBowl(rows, &bowl); err != nil {
			return nil, fmt.Errorf("error scanning discussion bowl row: %w", err)
		}
		bowls = append(bowls, bowl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discussion bowl rows: %w", err)
	}
	return bowls, nil
}

// GetDiscussionBowlByID retrieves a single bowl, (nil, nil) when absent
func (s *PostgresStorage) GetDiscussionBowlByID(ctx context.Context, id int64) (*models.DiscussionBowl, error) {
	var bowl models.DiscussionBowl
	err := scanBowl(s.db.QueryRow(ctx, `
		SELECT `+bowlColumns+`
		FROM discussion_bowls
		WHERE id = $1`, id), &bowl)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning discussion bowl row: %w", err)
	}
	return &bowl, nil
}

// CreateDiscussionBowl inserts a new bowl. Counters start at zero
// regardless of what the caller passes.
func (s *PostgresStorage) CreateDiscussionBowl(ctx context.Context, bowl *models.DiscussionBowl) (*models.DiscussionBowl, error) {
	stored := *bowl
	err := s.db.QueryRow(ctx, `
		INSERT INTO discussion_bowls (name, description, discipline, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, member_count, post_count, created_at`,
		bowl.Name, bowl.Description, bowl.Discipline, bowl.IsActive).
		Scan(&stored.ID, &stored.MemberCount, &stored.PostCount, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating discussion bowl: %w", err)
	}
	return &stored, nil
}

const topicColumns = `id, bowl_id, title, content, author_id, reply_count, created_at`

func scanTopic(row pgx.Row, topic *models.DiscussionTopic) error {
	return row.Scan(
		&topic.ID, &topic.BowlID, &topic.Title, &topic.Content,
		&topic.AuthorID, &topic.ReplyCount, &topic.CreatedAt)
}

// GetTopicsByBowlID lists the topics inside a bowl
func (s *PostgresStorage) GetTopicsByBowlID(ctx context.Context, bowlID int64) ([]models.DiscussionTopic, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+topicColumns+`
		FROM discussion_topics
		WHERE bowl_id = $1
		ORDER BY id`, bowlID)
	if err != nil {
		return nil, fmt.Errorf("error querying discussion topics: %w", err)
	}
	defer rows.Close()

	topics := []models.DiscussionTopic{}
	for rows.Next() {
		var topic models.DiscussionTopic
		if err := scanTopic(rows, &topic); err != nil {
			return nil, fmt.Errorf("error scanning discussion topic row: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discussion topic rows: %w", err)
	}
	return topics, nil
}

// CreateDiscussionTopic inserts a topic and bumps the owning bowl's
// post counter inside a single transaction.
func (s *PostgresStorage) CreateDiscussionTopic(ctx context.Context, topic *models.DiscussionTopic) (*models.DiscussionTopic, error) {
	stored := *topic
	err := db.WithTransaction(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO discussion_topics (bowl_id, title, content, author_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, reply_count, created_at`,
			topic.BowlID, topic.Title, topic.Content, topic.AuthorID).
			Scan(&stored.ID, &stored.ReplyCount, &stored.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating discussion topic: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE discussion_bowls
			SET post_count = post_count + 1
			WHERE id = $1`, topic.BowlID)
		if err != nil {
			return fmt.Errorf("error incrementing bowl post count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
