package health

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/assetlog/core/logger"
)

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
//
// Example:
//
//	mux.Handle("GET /readyz", health.Readiness(log,
//		health.BundleCheck(resolveIndex, "/"),
//	))
func Readiness(log *slog.Logger, fn ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		for _, f := range fn {
			if err := f(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "Readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "READY")
	}
}
