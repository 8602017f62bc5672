package middleware

import (
	"net/http"

	"go-laundry-management/helpers"

	"github.com/gin-gonic/gin"
)

// RequireRole denies requests whose resolved role does not meet the
// requirement. It runs after Authentication, so the uid is already on the
// context; an empty uid resolves to anonymous and is denied.
func RequireRole(guard *helpers.AccessGuard, required helpers.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := guard.ResolveRole(c.GetString("uid"))
		if !guard.Authorize(role, required) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Set("role", role.String())
		c.Next()
	}
}
