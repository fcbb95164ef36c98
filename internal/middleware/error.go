package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chefincasa/backend/internal/apperrors"
)

// ErrorHandler is the single place errors turn into responses. Handlers push
// errors with c.Error and return; domain errors keep their status and
// message, anything else becomes a generic 500 with no internal detail.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			c.JSON(appErr.Status, gin.H{"ok": false, "error": appErr.Message})
			return
		}

		log.Error("unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
	}
}
