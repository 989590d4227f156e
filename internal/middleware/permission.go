package middleware

import (
	"net/http"

	"jobboard/internal/repository"
	"jobboard/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuperAdminRole bypasses the permission table entirely.
const SuperAdminRole = "SUPER_ADMIN"

// PermissionMiddleware gates admin endpoints on the caller's role
// permissions. A permission matches when its api_path equals the route
// pattern and its method equals the request method.
func PermissionMiddleware(userRepo repository.UserRepository, roleRepo repository.RoleRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := token.CurrentUserLogin(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		user, err := userRepo.GetByEmail(email)
		if err != nil {
			logger.Error("Failed to load user for permission check", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			c.Abort()
			return
		}
		if user == nil || user.RoleID == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to access this endpoint"})
			c.Abort()
			return
		}

		role, err := roleRepo.GetByID(*user.RoleID)
		if err != nil {
			logger.Error("Failed to load role for permission check", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			c.Abort()
			return
		}
		if role == nil || !role.Active {
			c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to access this endpoint"})
			c.Abort()
			return
		}
		if role.Name == SuperAdminRole {
			c.Next()
			return
		}

		permissions, err := roleRepo.GetPermissions(role.ID)
		if err != nil {
			logger.Error("Failed to load permissions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			c.Abort()
			return
		}

		path := c.FullPath()
		method := c.Request.Method
		for _, permission := range permissions {
			if permission.APIPath == path && permission.Method == method {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to access this endpoint"})
		c.Abort()
	}
}
