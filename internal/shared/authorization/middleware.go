package authorization

import (
	"github.com/gin-gonic/gin"

	"faultdesk/internal/shared/constants"
)

// PrincipalFromContext returns the principal installed by the auth
// middleware, or false when the request is unauthenticated.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// RequireRole rejects requests whose principal ranks below the required role.
func RequireRole(required UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFromContext(c)
		if !ok {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"type":    "unauthorized",
				"message": "authentication required",
			}})
			c.Abort()
			return
		}
		if !HasMinimumRole(p.Role, required) {
			c.JSON(403, gin.H{"success": false, "error": gin.H{
				"type":    "forbidden",
				"message": "insufficient role",
			}})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireTechnician() gin.HandlerFunc {
	return RequireRole(RoleTechnician)
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}
