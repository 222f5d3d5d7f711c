// Package middleware provides HTTP middleware for the habit tracker.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kedrick07/habit-tracker/internal/service"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "user_id"
	ContextUserName = "user_name"
)

// Auth validates the bearer token and puts the caller's identity on the
// request context. When cookieName is non-empty the token may also
// arrive in that cookie (browser clients). Requests without a valid
// token are rejected with 401.
func Auth(jwtService service.JWTService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" && cookieName != "" {
			token, _ = c.Cookie(cookieName)
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserName, claims.Name)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the context.
// It is only meaningful behind the Auth middleware.
func CurrentUserID(c *gin.Context) int64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int64)
	return userID
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
