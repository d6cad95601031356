package middleware

import (
	"net/http"
	"strings"

	"mindwell/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the caller's identity from the bearer token
// issued by the external auth service and stores it on the context. Token
// issuance and session management live outside this server; only the
// signature and subject are checked here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", subject)
		c.Next()
	}
}
