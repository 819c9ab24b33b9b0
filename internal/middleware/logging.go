package middleware

import (
	"fmt"
	"net/http"
	"time"

	"sewaaset-prediction/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware writes one access line per request. Client errors are
// logged as warnings and server errors as errors.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		line := fmt.Sprintf("%s %s route=%s status=%d latency=%v request_id=%s",
			c.Request.Method, c.Request.URL.Path, routeLabel(c), status, time.Since(start), RequestIDFrom(c))
		if propertyType := c.Param("type"); propertyType != "" {
			line += " property_type=" + propertyType
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.GlobalLogger.Error(line)
		case status >= http.StatusBadRequest:
			logger.GlobalLogger.Warn(line)
		default:
			logger.GlobalLogger.Println(line)
		}
	}
}
