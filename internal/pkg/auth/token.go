package auth

import (
	"strings"

	"github.com/google/uuid"
)

// NewSessionToken generates an opaque session token. The token carries
// no claims; it is only a key into the session store.
func NewSessionToken() string {
	return uuid.NewString()
}

// ExtractBearerToken pulls the token out of an Authorization header
// value of the form "Bearer <token>".
func ExtractBearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}
	return token, true
}
