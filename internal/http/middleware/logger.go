package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger emits one structured entry per request. Body size matters
// here because responses are whole images or archives.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(params gin.LogFormatterParams) string {
		fields := []zap.Field{
			zap.String("method", params.Method),
			zap.String("path", params.Path),
			zap.Int("status", params.StatusCode),
			zap.Int("body_size", params.BodySize),
			zap.Duration("latency", params.Latency),
			zap.String("client_ip", params.ClientIP),
		}
		if params.ErrorMessage != "" {
			fields = append(fields, zap.String("errors", params.ErrorMessage))
		}

		logger.Info("HTTP Request", fields...)
		return ""
	})
}
