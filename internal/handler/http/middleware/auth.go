package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by OptionalAuth.
const (
	ContextUserID      = "userID"
	ContextAccessToken = "accessToken"
)

// Authenticator resolves an access token to the user id it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (string, error)
}

// OptionalAuth attaches the session identity when a valid bearer token is
// present. Requests without one pass through untouched.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		userID, err := auth.Authenticate(c.Request.Context(), token)
		if err == nil && userID != "" {
			c.Set(ContextUserID, userID)
			c.Set(ContextAccessToken, token)
		}
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
