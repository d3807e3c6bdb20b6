package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/dberrors"
)

// PostgresStorage is the durable backend. Every query maps
// pgx.ErrNoRows to absence so that callers see the same (nil, nil)
// contract as the ephemeral backend.
type PostgresStorage struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// Interface compliance checks for both backends.
var (
	_ Storage = (*MemoryStorage)(nil)
	_ Storage = (*PostgresStorage)(nil)
)

// NewPostgresStorage creates the durable backend over an existing pool
func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = `id, username, password, email, display_name, university, discipline, graduation_year, bio, is_anonymous, avatar_url, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.DisplayName,
		&user.University, &user.Discipline, &user.GraduationYear, &user.Bio,
		&user.IsAnonymous, &user.AvatarURL, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *PostgresStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id)
	return scanUser(row)
}

// GetUserByUsername retrieves a user by username, case-insensitively
func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(username) = LOWER($1)`, username)
	return scanUser(row)
}

// GetUserByEmail retrieves a user by email, case-insensitively
func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(email) = LOWER($1)`, email)
	return scanUser(row)
}

// CreateUser inserts a new user and returns the stored record
func (s *PostgresStorage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	stored := *user
	err := s.db.QueryRow(ctx, `
		INSERT INTO users (username, password, email, display_name, university, discipline, graduation_year, bio, is_anonymous, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		user.Username, user.Password, user.Email, user.DisplayName,
		user.University, user.Discipline, user.GraduationYear, user.Bio,
		user.IsAnonymous, user.AvatarURL).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		// Two registrations can race past the pre-insert lookup; the
		// unique indexes are the arbiter.
		if dberrors.IsUniqueViolation(err, "users_username_lower_idx") {
			return nil, apperrors.ErrUsernameTaken
		}
		if dberrors.IsUniqueViolation(err, "users_email_lower_idx") {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return &stored, nil
}

// UpdateUser merges the provided fields into an existing user. It
// returns (nil, nil) when the id is unknown.
func (s *PostgresStorage) UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	builder := s.sb.Update("users").Where(squirrel.Eq{"id": id})

	changed := false
	if update.DisplayName != nil {
		builder = builder.Set("display_name", *update.DisplayName)
		changed = true
	}
	if update.University != nil {
		builder = builder.Set("university", *update.University)
		changed = true
	}
	if update.Discipline != nil {
		builder = builder.Set("discipline", *update.Discipline)
		changed = true
	}
	if update.GraduationYear != nil {
		builder = builder.Set("graduation_year", *update.GraduationYear)
		changed = true
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
		changed = true
	}
	if update.IsAnonymous != nil {
		builder = builder.Set("is_anonymous", *update.IsAnonymous)
		changed = true
	}
	if update.AvatarURL != nil {
		builder = builder.Set("avatar_url", *update.AvatarURL)
		changed = true
	}

	if !changed {
		// Nothing to merge; behave like a plain fetch
		return s.GetUser(ctx, id)
	}

	sql, args, err := builder.Suffix("RETURNING " + userColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update user query: %w", err)
	}

	return scanUser(s.db.QueryRow(ctx, sql, args...))
}
