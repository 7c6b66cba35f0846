// Package middleware provides net/http middleware shared by the asset server.
//
// Every middleware has the shape func(http.Handler) http.Handler and follows
// the same pattern: a default constructor, a WithConfig constructor taking a
// configuration struct, an optional Skip function, and context helpers for
// values the middleware stores.
//
// # Request ID
//
// RequestID assigns an identifier to every request. The ID is stored in the
// request context, set on the request headers for handlers further down the
// chain, and echoed in the response headers:
//
//	h := middleware.RequestID()(next)
//
//	// keep IDs assigned by an upstream proxy
//	h = middleware.RequestIDWithConfig(middleware.RequestIDConfig{
//		UseExisting: true,
//	})(next)
//
//	id, ok := middleware.GetRequestID(r.Context())
//
// # Request Logging
//
// Logging writes one structured slog record per request. Server errors are
// logged at error level; client errors and slow requests at warn level.
//
//	h := middleware.LoggingWithConfig(middleware.LoggingConfig{
//		Logger:               log,
//		LogLevel:             slog.LevelDebug,
//		SlowRequestThreshold: time.Second,
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/healthz"
//		},
//	})(next)
//
// Place RequestID first so the other middleware can read the ID.
package middleware
