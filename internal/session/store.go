// Package session issues and resolves opaque session tokens. Tokens
// are random uuids with a fixed TTL; revocation is a delete. The
// store is injected alongside storage so either backend pairing works.
package session

import (
	"context"
	"time"
)

// Store is the session capability used by the auth layer. Get returns
// apperrors.ErrUnauthorized for unknown or expired tokens.
type Store interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

type record struct {
	userID    int64
	expiresAt time.Time
}
