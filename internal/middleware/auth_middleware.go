package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/auth"
	"github.com/engbowl/engbowl/internal/session"
)

// ContextUserIDKey is the gin context key holding the authenticated
// user's id once RequireAuth has run.
const ContextUserIDKey = "userID"

// ContextTokenKey holds the raw session token for handlers that need
// to revoke it.
const ContextTokenKey = "sessionToken"

// RequireAuth resolves the session token from the session cookie or an
// Authorization bearer header and aborts with 401 when neither yields
// a live session.
func RequireAuth(sessions session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c, cookieName)
		if !ok {
			HandleAPIError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		userID, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (string, bool) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return auth.ExtractBearerToken(c.GetHeader("Authorization"))
}

// UserID retrieves the authenticated user's id set by RequireAuth
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// SessionToken retrieves the raw session token set by RequireAuth
func SessionToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextTokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
