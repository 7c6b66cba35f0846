package main

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/assetlog/core/accesslog"
	"github.com/dmitrymomot/assetlog/core/health"
	"github.com/dmitrymomot/assetlog/core/static"
	"github.com/dmitrymomot/assetlog/middleware"
)

const (
	livenessPath  = "/healthz"
	readinessPath = "/readyz"
)

// app holds the wired components of the binary.
type app struct {
	bundle    *static.Bundle
	accessLog *accesslog.Writer
	handler   http.Handler
}

// newApp builds the bundle, the access log and the handler chain:
// request ID, optional request logging, access log, then the bundle in front
// of the health endpoints.
func newApp(cfg Config, assets fs.FS, log *slog.Logger) (*app, error) {
	bundle, err := static.NewFromConfig(assets, cfg.Assets, static.WithLogger(log))
	if err != nil {
		return nil, err
	}

	reg := accesslog.DefaultRegistry()
	reg.Freeze()

	accessLog, err := accesslog.New(cfg.AccessLog, reg, accesslog.WithLogger(log))
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+livenessPath, health.Liveness)
	mux.Handle("GET "+readinessPath, health.Readiness(log, health.BundleCheck(func(p string) error {
		_, err := bundle.Resolver().Resolve(p)
		return err
	}, bundle.Resolver().MountPrefix())))

	var h http.Handler = mux
	// Health endpoints stay reachable when the bundle is mounted at the root.
	h = bundleExcept(bundle, h, livenessPath, readinessPath)
	h = accesslog.Middleware(accessLog)(h)
	if cfg.RequestLogging {
		h = middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip: func(r *http.Request) bool {
				return r.URL.Path == livenessPath || r.URL.Path == readinessPath
			},
		})(h)
	}
	h = middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		HeaderName:  accesslog.DefaultRequestIDHeader,
		UseExisting: true,
	})(h)

	return &app{
		bundle:    bundle,
		accessLog: accessLog,
		handler:   h,
	}, nil
}

// bundleExcept serves requests from the bundle unless the path is one of reserved.
func bundleExcept(bundle *static.Bundle, next http.Handler, reserved ...string) http.Handler {
	serveBundle := bundle.Middleware(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range reserved {
			if r.URL.Path == p || strings.HasPrefix(r.URL.Path, p+"/") {
				next.ServeHTTP(w, r)
				return
			}
		}
		serveBundle.ServeHTTP(w, r)
	})
}
