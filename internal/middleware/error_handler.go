package middleware

import (
	"sewaaset-prediction/internal/errors"
	"sewaaset-prediction/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error as
// {"error": {"message", "code"}}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := errors.MapError(c.Errors.Last().Err)
		log := logger.GlobalLogger.Warnf
		if appErr.HTTPStatus >= 500 {
			log = logger.GlobalLogger.Errorf
		}
		log("Request failed: request_id=%s, path=%s, method=%s, client_ip=%s, status=%d, error=%s",
			RequestIDFrom(c),
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			appErr.HTTPStatus,
			appErr.TechnicalMessage)

		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
