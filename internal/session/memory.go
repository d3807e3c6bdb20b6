package session

import (
	"context"
	"sync"
	"time"

	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/auth"
)

// MemoryStore keeps sessions in process memory. Expired entries are
// reaped lazily on lookup.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]record
	ttl      time.Duration
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory session store with the given TTL
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]record),
		ttl:      ttl,
	}
}

// Create issues a fresh token for the user
func (s *MemoryStore) Create(ctx context.Context, userID int64) (string, error) {
	token := auth.NewSessionToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = record{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

// Get resolves a token to its user id. Unknown and expired tokens are
// indistinguishable to the caller.
func (s *MemoryStore) Get(ctx context.Context, token string) (int64, error) {
	s.mu.RLock()
	rec, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	if time.Now().After(rec.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, apperrors.ErrUnauthorized
	}
	return rec.userID, nil
}

// Delete revokes a token. Deleting an unknown token is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
