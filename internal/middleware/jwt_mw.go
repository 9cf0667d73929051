package middleware

import (
	"strings"

	"job_board/internal/apperr"
	"job_board/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// Authenticate verifies the bearer token and attaches the account ID and role
// to the context.
func Authenticate(jwtUtil *utils.JWTUtil) Gate {
	return GateFunc(func(c *gin.Context) error {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return apperr.Unauthenticated("authorization header required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			return apperr.Unauthenticated("invalid authorization header format")
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			msg := "invalid or expired token"
			if verr, ok := apperr.As(err); ok {
				msg = verr.Message
			}
			return apperr.Wrap(apperr.KindUnauthenticated, msg, err)
		}

		// Set account information in context
		c.Set(AuthUserKey, claims.AccountID)
		c.Set(AuthRoleKey, claims.Role)
		return nil
	})
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return Handler(Authenticate(jwtUtil))
}

// AuthUserID returns the authenticated account ID, or "" before Authenticate ran.
func AuthUserID(c *gin.Context) string {
	return c.GetString(AuthUserKey)
}

// AuthRole returns the authenticated role, or "" before Authenticate ran.
func AuthRole(c *gin.Context) string {
	return c.GetString(AuthRoleKey)
}
