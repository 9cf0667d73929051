package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"job_board/internal/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the response for errors recorded on c.Errors when no
// response has been written yet. Internal errors are logged with their cause;
// the client sees a generic message.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		kind := apperr.KindOf(err)
		if kind == apperr.KindInternal {
			logger.ErrorContext(c.Request.Context(), "request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", err,
			)
		}
		c.AbortWithStatusJSON(apperr.HTTPStatus(kind), NewErrorResponse(err))
	}
}

// Recovery converts a panic into an Internal response.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: internalMessage, Kind: apperr.KindInternal})
	})
}

// NotFoundHandler answers requests to unknown routes.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, NewErrorResponse(apperr.NotFound("resource not found")))
	}
}
