package middleware

import (
	"job_board/internal/apperr"
	"job_board/internal/model"

	"github.com/gin-gonic/gin"
)

// RequireRoles passes requests whose authenticated role is one of allowedRoles.
func RequireRoles(allowedRoles ...string) Gate {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return GateFunc(func(c *gin.Context) error {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			return apperr.Unauthenticated("role not found in token, ensure JWT middleware runs first")
		}

		userRole, ok := roleVal.(string)
		if !ok {
			return apperr.Forbidden("invalid role type in token")
		}

		if _, ok := allowed[userRole]; !ok {
			return apperr.Forbidden("you do not have permission to access this resource")
		}
		return nil
	})
}

// RoleMiddleware creates a middleware to check for specific account roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return Handler(RequireRoles(allowedRoles...))
}

// HRMiddleware passes Company_HR accounts only.
func HRMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleCompanyHR)
}

// UserMiddleware passes job seekers only.
func UserMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleUser)
}

// AnyRoleMiddleware passes every authenticated role.
func AnyRoleMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleUser, model.RoleCompanyHR)
}
