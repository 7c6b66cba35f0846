package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/assetlog/core/logger"
)

// LoggingConfig configures the diagnostic request logging middleware.
//
// This is operational logging through slog, separate from the access log file.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for successful requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// LogRequest enables a record when the request starts (default: false)
	LogRequest bool

	// LogHeaders enables logging of request/response headers (default: false for security)
	LogHeaders bool

	// SensitiveHeaders is a list of header names to redact (default: common auth headers)
	SensitiveHeaders []string

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware with default configuration.
func Logging() func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{
		Logger: log,
	})
}

// LoggingWithConfig creates a request logging middleware with custom configuration.
// Server errors are logged at error level, client errors and slow requests at warn.
func LoggingWithConfig(cfg LoggingConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.SensitiveHeaders == nil {
		cfg.SensitiveHeaders = []string{
			"Authorization",
			"Cookie",
			"Set-Cookie",
			"X-Api-Key",
			"X-Auth-Token",
			"X-Csrf-Token",
		}
	}

	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}

	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			requestID, _ := GetRequestID(r.Context())

			if cfg.LogRequest {
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Event("request"),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.RemoteAddr(r.RemoteAddr),
					logger.RequestID(requestID),
				}
				if r.URL.RawQuery != "" {
					attrs = append(attrs, logger.Query(r.URL.RawQuery))
				}
				if cfg.LogHeaders {
					attrs = append(attrs, headersAttr("request_headers", r.Header, cfg.SensitiveHeaders))
				}
				cfg.Logger.LogAttrs(r.Context(), cfg.LogLevel, "HTTP request started", attrs...)
			}

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("response"),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(wrapped.statusCode),
				logger.BytesOut(wrapped.size),
				logger.Duration(duration),
				logger.RequestID(requestID),
			}
			if cfg.LogHeaders {
				attrs = append(attrs, headersAttr("response_headers", wrapped.Header(), cfg.SensitiveHeaders))
			}

			level := cfg.LogLevel
			switch {
			case wrapped.statusCode >= 500:
				level = slog.LevelError
			case wrapped.statusCode >= 400:
				level = slog.LevelWarn
			case duration > cfg.SlowRequestThreshold:
				level = slog.LevelWarn
				attrs = append(attrs, slog.Bool("slow_request", true))
			}

			cfg.Logger.LogAttrs(r.Context(), level, "HTTP request completed", attrs...)
		})
	}
}

func headersAttr(key string, h http.Header, sensitive []string) slog.Attr {
	headers := make(map[string]any, len(h))
	for name, values := range h {
		switch {
		case slices.Contains(sensitive, name):
			headers[name] = "[REDACTED]"
		case len(values) == 1:
			headers[name] = values[0]
		default:
			headers[name] = values
		}
	}
	return slog.Any(key, headers)
}

// responseWriter wraps http.ResponseWriter to capture response details
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	size          int64
	headerWritten bool
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.headerWritten {
		rw.statusCode = statusCode
		rw.headerWritten = true
	}
	rw.ResponseWriter.WriteHeader(statusCode)
}

// Write captures the response size
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	size, err := rw.ResponseWriter.Write(b)
	rw.size += int64(size)
	return size, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
