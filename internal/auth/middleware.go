package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

// RequireAccount authenticates the request and injects the account id into
// the request context. Two credential kinds share the Authorization header:
// API keys (recognized by their prefix, e.g. "dhwani_") for calling
// runtimes, session tokens for everything else.
func RequireAccount(m *Manager, keys KeyStore, apiKeyPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(authorizationHeader))
		if raw == "" || !strings.HasPrefix(raw, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		credential := strings.TrimPrefix(raw, bearerPrefix)

		var userID string
		if apiKeyPrefix != "" && strings.HasPrefix(credential, apiKeyPrefix) {
			id, err := keys.ResolveAPIKey(c.Request.Context(), credential)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
				return
			}
			userID = id
		} else {
			claims, err := m.Verify(credential, time.Now())
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			userID = claims.UserID
		}

		c.Request = c.Request.WithContext(WithAccount(c.Request.Context(), userID))

		// Also store on gin context for handler convenience.
		c.Set("user_id", userID)

		c.Next()
	}
}
