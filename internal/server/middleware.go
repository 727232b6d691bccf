package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/auth"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// instrument wraps every request in a span, observes its latency and writes
// the access log line.
func instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), c.Request.Method+" "+route)
		defer span.Finish()
		ext.HTTPMethod.Set(span, c.Request.Method)
		ext.HTTPUrl.Set(span, c.Request.URL.Path)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		ext.HTTPStatusCode.Set(span, uint16(status))
		if status >= http.StatusInternalServerError {
			ext.Error.Set(span, true)
		}
		observeResponse(route, status, elapsed)

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("requestID", c.GetString(requestIDKey)),
		)
	}
}

// requireSession rejects requests without a valid session cookie and puts
// the session into the request context.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(s.cookieName)
		session, err := s.auth.Verify(token)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), session))
		c.Next()
	}
}
