package middleware

import (
	"net/http"
	"strings"

	"jobboard/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware creates a Gin middleware for JWT authentication. On
// success the caller's identity and raw credential are attached to the
// request context, so downstream code resolves the current user through
// token.CurrentUserLogin / token.CurrentUserJWT instead of shared state.
func AuthMiddleware(authority *token.Authority, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := authority.Validate(tokenString)
		if err != nil {
			logger.Debug("Rejected bearer token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		ctx := token.WithAuthentication(c.Request.Context(), token.Authentication{
			Name:       claims.Subject,
			Credential: tokenString,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
