package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-registry-api/internal/infrastructure/metrics"
)

const maxLogBodySize = 1 << 12 // 4 KB

// RequestLogGin logs one line per request. Only the first 4 KB of the body
// are logged, with email and phone masked; the handler still reads the full body.
func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request.Body != nil {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize))
			body = maskBody(buf.Bytes())
			c.Request.Body = readCloser{
				Reader: io.MultiReader(bytes.NewReader(buf.Bytes()), c.Request.Body),
				Closer: c.Request.Body,
			}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues(metrics.AppRequests).Inc()
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("caller", c.GetString(CtxCallerID)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}

var sensitiveFields = []string{"email", "phone"}

// maskBody hides personal fields of a JSON object body. Anything that is not a
// complete JSON object, a truncated body included, is reduced to its size.
func maskBody(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return fmt.Sprintf("<%d bytes not logged>", len(raw))
	}
	for _, k := range sensitiveFields {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			m[k] = maskValue(s)
		} else {
			m[k] = "***"
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("<%d bytes not logged>", len(raw))
	}
	return string(b)
}

// maskValue keeps the first letter and the domain of an email, the last two
// characters of anything else.
func maskValue(s string) string {
	if at := strings.LastIndexByte(s, '@'); at > 0 {
		return s[:1] + "***" + s[at:]
	}
	if len(s) > 4 {
		return "***" + s[len(s)-2:]
	}
	return "***"
}
