package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/auth"
)

// PostgresStore persists sessions in the 'sessions' table so logins
// survive restarts. Expired rows are cleaned up opportunistically on
// Create.
type PostgresStore struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore creates a Postgres-backed session store
func NewPostgresStore(db *pgxpool.Pool, ttl time.Duration) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl}
}

// Create issues a fresh token for the user and sweeps expired rows
func (s *PostgresStore) Create(ctx context.Context, userID int64) (string, error) {
	if _, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`); err != nil {
		return "", fmt.Errorf("error cleaning up expired sessions: %w", err)
	}

	token := auth.NewSessionToken()
	_, err := s.db.Exec(ctx, `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)`,
		token, userID, time.Now().Add(s.ttl))
	if err != nil {
		return "", fmt.Errorf("error creating session: %w", err)
	}
	return token, nil
}

// Get resolves a token to its user id, rejecting expired rows
func (s *PostgresStore) Get(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := s.db.QueryRow(ctx, `
		SELECT user_id
		FROM sessions
		WHERE token = $1 AND expires_at >= NOW()`, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUnauthorized
		}
		return 0, fmt.Errorf("error looking up session: %w", err)
	}
	return userID, nil
}

// Delete revokes a token. Deleting an unknown token is a no-op.
func (s *PostgresStore) Delete(ctx context.Context, token string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
