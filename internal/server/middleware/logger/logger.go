// Package logger provides request logging middleware for the go-supervisor HTTP server.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Attribute keys written on every request record.
const (
	attrMethod    = "method"
	attrPath      = "path"
	attrQuery     = "query"
	attrStatus    = "status"
	attrSize      = "size"
	attrDuration  = "duration"
	attrClientIP  = "client_ip"
	attrRequestID = "request_id"
)

const logMessage = "HTTP request"

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// ConsoleLogger is a middleware that writes one log record per request
type ConsoleLogger struct {
	logger          lgr
	requestIDHeader string
	skipPaths       map[string]struct{}
}

// Option configures a ConsoleLogger
type Option func(*ConsoleLogger)

// WithRequestIDHeader names the response header whose value is logged as request_id.
func WithRequestIDHeader(header string) Option {
	return func(cl *ConsoleLogger) {
		cl.requestIDHeader = header
	}
}

// WithSkipPaths disables logging for exact path matches.
func WithSkipPaths(paths ...string) Option {
	return func(cl *ConsoleLogger) {
		for _, p := range paths {
			cl.skipPaths[p] = struct{}{}
		}
	}
}

// NewConsoleLogger creates the middleware writing to handler
func NewConsoleLogger(handler slog.Handler, opts ...Option) *ConsoleLogger {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	cl := &ConsoleLogger{
		logger:    slog.New(handler),
		skipPaths: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Middleware returns the middleware function
func (cl *ConsoleLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		if _, skip := cl.skipPaths[r.URL.Path]; skip {
			rp.Next()
			return
		}

		start := time.Now()
		rp.Next()
		duration := time.Since(start)

		rw := rp.Writer()
		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}

		attrs := []slog.Attr{
			slog.String(attrMethod, r.Method),
			slog.String(attrPath, r.URL.Path),
			slog.Int(attrStatus, status),
			slog.Int(attrSize, rw.Size()),
			slog.Duration(attrDuration, duration),
			slog.String(attrClientIP, clientIP(r)),
		}
		if r.URL.RawQuery != "" {
			attrs = append(attrs, slog.String(attrQuery, r.URL.RawQuery))
		}
		if cl.requestIDHeader != "" {
			if id := rw.Header().Get(cl.requestIDHeader); id != "" {
				attrs = append(attrs, slog.String(attrRequestID, id))
			}
		}

		cl.logger.LogAttrs(r.Context(), levelForStatus(status), logMessage, attrs...)
	}
}

// levelForStatus maps 5xx to error, 4xx to warn and everything else to info
func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
