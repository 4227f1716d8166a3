package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"microblog/internal/logger"
)

// Logging logs every HTTP request with a generated request id.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Set("request_id", requestID)

	l.logger.Info("HTTP request started",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path)

	c.Next()

	l.logger.Info("HTTP request completed",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", c.Writer.Status())
}
