package logger

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// sensitiveHeaders are never written to logs.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// LogHTTPError logs an error that occurred while serving an HTTP request,
// enriched with request metadata.
func LogHTTPError(c *gin.Context, err error, statusCode int, message string) {
	log := GetLogger()

	fields := []interface{}{
		"status_code", statusCode,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"client_ip", c.ClientIP(),
		"headers", filterSensitiveHeaders(c.Request.Header),
	}
	if requestID, ok := c.Get("request_id"); ok {
		fields = append(fields, "request_id", requestID)
	}
	if err != nil {
		fields = append(fields, "error", err)
	}

	log.Errorw(message, fields...)
}

func filterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string, len(headers))
	for name, values := range headers {
		if sensitiveHeaders[strings.ToLower(name)] {
			filtered[name] = "[REDACTED]"
			continue
		}
		filtered[name] = strings.Join(values, ", ")
	}
	return filtered
}
