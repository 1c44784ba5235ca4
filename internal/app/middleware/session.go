// Package middleware provides Gin middleware for the application.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/feature/auth/domain/entity"
)

// SessionCookie is the cookie name carrying the signed session token.
const SessionCookie = "session"

// ContextUserID is the Gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// SessionResolver resolves a session token to the authenticated user.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// TokenFromRequest extracts the session token from the Authorization header
// or, failing that, from the session cookie.
func TokenFromRequest(c *gin.Context) (string, bool) {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer "), true
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// SessionRequired returns a Gin middleware function that resolves the session
// token and restricts access to authenticated users only.
func SessionRequired(auth SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract the token from header or cookie
		token, ok := TokenFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		// 2. Resolve the token to a user via the server-side session
		user, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		// 3. Expose the user ID to downstream handlers
		c.Set(ContextUserID, user.ID)
		c.Next()
	}
}
