package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"
)

const ctxKeyTimedOut = "timed_out"

// RequestInfo is what LogRequest captures about one request
type RequestInfo struct {
	Method       string
	Path         string
	ClientIP     string
	StatusCode   int
	StartTime    time.Time
	Duration     time.Duration
	RequestSize  int64
	ResponseSize int64
	Query        string
	UserAgent    string
	TimedOut     bool
}

// RequestLogger receives one RequestInfo per finished request
type RequestLogger interface {
	Log(info RequestInfo)
}

// LogRequest logs a single entry at the end of each request
func LogRequest(logger RequestLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestSize := c.Request.ContentLength

		c.Next()

		timedOut := c.GetBool(ctxKeyTimedOut)
		logger.Log(RequestInfo{
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			ClientIP:     c.ClientIP(),
			StatusCode:   c.Writer.Status(),
			StartTime:    startTime.UTC(),
			Duration:     time.Since(startTime),
			RequestSize:  requestSize,
			ResponseSize: int64(c.Writer.Size()),
			Query:        c.Request.URL.RawQuery,
			UserAgent:    c.Request.UserAgent(),
			TimedOut:     timedOut,
		})
	}
}

// LogHarbourAdapter writes RequestInfo as a logharbour activity log
type LogHarbourAdapter struct {
	logger *logharbour.Logger
}

// NewLogHarbourAdapter creates a RequestLogger backed by logger
func NewLogHarbourAdapter(logger *logharbour.Logger) *LogHarbourAdapter {
	return &LogHarbourAdapter{logger: logger}
}

// Log implements RequestLogger
func (a *LogHarbourAdapter) Log(info RequestInfo) {
	logger := a.logger.WithModule("http").
		WithOp("request").
		WithRemoteIP(info.ClientIP).
		WithClass(info.Method).
		WithInstanceId(info.Path).
		WithStatus(getStatus(info.StatusCode))

	data := map[string]any{
		"method":        info.Method,
		"path":          info.Path,
		"status":        info.StatusCode,
		"start_time":    info.StartTime.Format(time.RFC3339),
		"duration_ms":   info.Duration.Milliseconds(),
		"request_size":  info.RequestSize,
		"response_size": info.ResponseSize,
	}
	if info.Query != "" {
		data["query"] = info.Query
	}
	if info.UserAgent != "" {
		data["user_agent"] = info.UserAgent
	}
	if info.TimedOut {
		data["timed_out"] = true
	}

	logger.Info().LogActivity("HTTP request completed", data)
}

func getStatus(statusCode int) logharbour.Status {
	if statusCode >= 200 && statusCode < 400 {
		return logharbour.Success
	}
	return logharbour.Failure
}

// Timeout puts a deadline of d on the request context. Handlers that see
// the deadline pass answer with 503. d <= 0 disables the deadline.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.Set(ctxKeyTimedOut, true)
		}
	}
}

// expired answers the request with request_timeout when its context is
// already done.
func expired(c *gin.Context) bool {
	if err := c.Request.Context().Err(); err != nil {
		c.Set(ctxKeyTimedOut, errors.Is(err, context.DeadlineExceeded))
		sendError(c, http.StatusServiceUnavailable, BuildErrorMessage(ErrcodeRequestTimeout, nil))
		return true
	}
	return false
}
