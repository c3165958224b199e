package middleware

import (
	"net/http"
	"time"

	"hr-payroll-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs every request once it has been handled, at a level chosen by
// the response status class
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency":    time.Since(start).String(),
			"user_agent": c.Request.UserAgent(),
		}
		if query != "" {
			fields["query"] = query
		}
		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			fields["error"] = errorMessage
		}

		log := logger.FromGinContext(c).WithFields(fields)
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request")
		case status >= http.StatusBadRequest:
			log.Warn("request")
		default:
			log.Info("request")
		}
	}
}
