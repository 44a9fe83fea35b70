// Package middleware provides HTTP middleware for the dabmux-gui REST API,
// including API key authentication and request logging.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dabmux-gui/internal/api/models"
)

// APIKeyHeader carries the shared secret.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey enforces a simple shared-secret API key.
// Clients must send `X-API-Key: <key>`. An empty expected key disables the check.
func RequireAPIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}
		got := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1 {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}
