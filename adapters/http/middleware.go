package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// ErrorMiddleware renders the last error a handler pushed with c.Error.
// Unexpected failures are logged and answered with a generic message.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status := apperror.ToHTTPStatus(err)
		appErr, ok := apperror.As(err)
		if !ok || status == http.StatusInternalServerError {
			log.Error("Request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			body := gin.H{"error": apperror.ErrInternal.Error(), "message": "An internal server error occurred"}
			if ok {
				body["error"] = appErr.BaseError.Error()
			}
			c.JSON(http.StatusInternalServerError, body)
			return
		}

		c.JSON(status, appErr.ToJSON())
	}
}

// RequestLogger writes one line per request, leveled by status.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		switch {
		case status >= http.StatusInternalServerError:
			var err error
			if last := c.Errors.Last(); last != nil {
				err = last.Err
			}
			log.Error("API", err, fields...)
		case status >= http.StatusBadRequest:
			log.Warn("API", fields...)
		default:
			log.Info("API", fields...)
		}
	}
}

// CORS allows the listed origins with credentials. The list never holds "*".
// With no origins no CORS headers are emitted at all.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
