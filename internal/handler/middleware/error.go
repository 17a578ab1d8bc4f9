package middleware

import (
	"log/slog"
	"net/http"

	"room-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error a handler recorded. Server-side failures are
// logged with the original error; the client only sees the public message.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if resp, err, ok := lastPublicError(c); ok && resp.Status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), "request failed",
				"request_id", RequestID(c),
				"status", resp.Status,
				"error", err)
		}

		if c.Writer.Written() {
			return
		}
		if resp, _, ok := lastPublicError(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func lastPublicError(c *gin.Context) (httperr.Response, error, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, e.Err, true
		}
	}
	return httperr.Response{}, nil, false
}

// CustomRecovery turns a panic into a 500 with the usual error body.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
