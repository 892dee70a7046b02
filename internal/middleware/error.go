package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/errors"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
)

// ErrorHandlerMiddleware recovers panics and converts errors attached
// to the context into the standard response envelope. Handlers that
// call c.Error instead of writing a response get their AppError status
// mapped here; anything else becomes a logged 500 with a generic
// client message.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", string(debug.Stack())).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "An unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if appErr, ok := err.(*apperrors.AppError); ok {
				c.JSON(appErr.Code, gin.H{
					"success": false,
					"message": appErr.Message,
				})
				return
			}

			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled request error")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
			})
		}
	}
}
