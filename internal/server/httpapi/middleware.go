package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mpetrashin/tokengate/internal/logging"
)

// RequestLogger logs one structured line per request after it completes.
// Request bodies are never logged; they carry credentials.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
