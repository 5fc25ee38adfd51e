package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/logger"
)

// ErrorHandler renders the last error a handler recorded with c.Error as
// {"error":{"code","message"}}. AppErrors keep their status, code and
// message and have their Internal cause logged; anything else becomes a
// generic 500. Responses a handler already wrote are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.Get().With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", RequestID(c),
		)

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unexpected error", "error", err.Error())
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			log.Errorw("request failed", "code", appErr.Code, "internal", appErr.Internal.Error())
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
