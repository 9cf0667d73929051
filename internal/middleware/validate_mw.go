package middleware

import (
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
)

// PayloadKey holds the validated request body in the context.
const PayloadKey = "payload"

// Validate decodes the JSON body into a T and validates it. On success the
// payload is available to the handler through Payload.
func Validate[T any](v *validation.Validator) Gate {
	return GateFunc(func(c *gin.Context) error {
		var payload T
		if err := v.Decode(c.Request.Body, &payload); err != nil {
			return err
		}
		if err := v.Struct(payload); err != nil {
			return err
		}
		c.Set(PayloadKey, &payload)
		return nil
	})
}

// ValidateMiddleware creates a middleware enforcing Validate for T.
func ValidateMiddleware[T any](v *validation.Validator) gin.HandlerFunc {
	return Handler(Validate[T](v))
}

// Payload returns the body validated for T, or nil if Validate[T] did not run.
func Payload[T any](c *gin.Context) *T {
	val, exists := c.Get(PayloadKey)
	if !exists {
		return nil
	}
	payload, _ := val.(*T)
	return payload
}
