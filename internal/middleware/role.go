package middleware

import (
	"net/http"

	"frontdesk/internal/domain"
	"frontdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated user has one of the given roles.
func RequireRole(roles ...domain.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		for _, r := range roles {
			if role.(string) == string(r) {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// ManagerOnly guards room, room-type and discount administration.
func ManagerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleManager)
}

// ITAdminOnly guards staff account administration.
func ITAdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleITAdmin)
}
