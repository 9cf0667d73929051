package middleware

import (
	"context"

	"job_board/internal/apperr"

	"github.com/gin-gonic/gin"
)

// OwnerLookup returns the owner-reference of the resource with the given ID.
// A missing resource must be reported as an apperr NotFound.
type OwnerLookup func(ctx context.Context, id string) (ownerID string, err error)

// RequireOwnership passes requests made by the owner of the resource named by
// the route parameter param.
func RequireOwnership(param string, lookup OwnerLookup) Gate {
	return GateFunc(func(c *gin.Context) error {
		accountID := AuthUserID(c)
		if accountID == "" {
			return apperr.Unauthenticated("account not found in context, ensure JWT middleware runs first")
		}

		ownerID, err := lookup(c.Request.Context(), c.Param(param))
		if err != nil {
			return err
		}
		if ownerID != accountID {
			return apperr.Forbidden("you do not own this resource")
		}
		return nil
	})
}

// OwnershipMiddleware creates a middleware enforcing RequireOwnership.
func OwnershipMiddleware(param string, lookup OwnerLookup) gin.HandlerFunc {
	return Handler(RequireOwnership(param, lookup))
}
