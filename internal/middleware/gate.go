package middleware

import (
	"job_board/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Gate is one pass/fail check run ahead of a handler. A nil error lets the
// request continue.
type Gate interface {
	Apply(c *gin.Context) error
}

// GateFunc adapts a function to Gate.
type GateFunc func(c *gin.Context) error

// Apply calls f(c).
func (f GateFunc) Apply(c *gin.Context) error { return f(c) }

// Chain applies gates in order and stops at the first failure.
func Chain(gates ...Gate) Gate {
	return GateFunc(func(c *gin.Context) error {
		for _, g := range gates {
			if err := g.Apply(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// Handler turns a gate into gin middleware. Taxonomy failures terminate the
// request with their mapped status. Any other failure is handed to
// ErrorHandler, which logs it and responds Internal.
func Handler(g Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := g.Apply(c); err != nil {
			AbortWithError(c, err)
			return
		}
		c.Next()
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Kind    apperr.Kind             `json:"kind"`
	Details []apperr.FieldViolation `json:"details,omitempty"`
}

const internalMessage = "internal server error"

// NewErrorResponse builds the client-facing body for err. Internal errors
// never expose their cause.
func NewErrorResponse(err error) ErrorResponse {
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind == apperr.KindInternal {
		return ErrorResponse{Error: internalMessage, Kind: apperr.KindInternal}
	}
	msg := appErr.Message
	if msg == "" {
		msg = string(appErr.Kind)
	}
	return ErrorResponse{Error: msg, Kind: appErr.Kind, Details: appErr.Violations}
}

// AbortWithError terminates the request with err. Internal failures are
// recorded on c.Errors for ErrorHandler instead of being written here.
func AbortWithError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(apperr.HTTPStatus(kind), NewErrorResponse(err))
}
