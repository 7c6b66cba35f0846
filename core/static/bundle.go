package static

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/assetlog/core/handler"
	"github.com/dmitrymomot/assetlog/core/logger"
)

const allowedMethods = "GET, HEAD"

// Bundle serves read-only resources packaged with the application.
//
// Only GET and HEAD are answered; other methods get 405. Conditional GET is
// supported through If-Modified-Since at one-second resolution. Range requests
// and ETags are not supported.
type Bundle struct {
	resolver *Resolver
	logger   *slog.Logger
}

// New creates a bundle handler over fsys.
// Returns an error if the bundle root is missing or the options are invalid.
func New(fsys fs.FS, opts ...Option) (*Bundle, error) {
	cfg := defaultBundleConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	resolver, err := newResolver(fsys, cfg)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		resolver: resolver,
		logger:   cfg.logger,
	}, nil
}

// MustNew is like New but panics on error. Intended for program startup.
func MustNew(fsys fs.FS, opts ...Option) *Bundle {
	b, err := New(fsys, opts...)
	if err != nil {
		panic("static.Bundle: " + err.Error())
	}
	return b
}

// Resolver returns the resolver used by the bundle.
func (b *Bundle) Resolver() *Resolver {
	return b.resolver
}

// Matches reports whether the request path falls under the bundle mount prefix.
func (b *Bundle) Matches(requestPath string) bool {
	return b.resolver.Matches(requestPath)
}

// ServeHTTP implements http.Handler.
func (b *Bundle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", allowedMethods)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	res, err := b.resolver.Resolve(r.URL.Path)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	lastModified := formatHTTPDate(res.ModTime)
	if since, ok := parseHTTPDate(r.Header.Get("If-Modified-Since")); ok && !since.Before(res.ModTime) {
		w.Header().Set("Last-Modified", lastModified)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	f, err := res.Open()
	if err != nil {
		b.logger.ErrorContext(r.Context(), "failed to open bundled resource",
			logger.Component("static"),
			logger.Path(res.Name),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()

	h := w.Header()
	h.Set("Last-Modified", lastModified)
	h.Set("Content-Type", res.ContentType)
	h.Set("Content-Length", strconv.FormatInt(res.Size, 10))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	// Headers are already sent; a failed copy can only be reported.
	if _, err := io.Copy(w, f); err != nil {
		b.logger.WarnContext(r.Context(), "failed to stream bundled resource",
			logger.Component("static"),
			logger.Path(res.Name),
			logger.Error(err),
		)
	}
}

// Middleware serves matching paths from the bundle and passes everything else to next.
// With the root mount every path matches, so next is never reached.
func (b *Bundle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Matches(r.URL.Path) {
			b.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler adapts the bundle to the typed handler used by routers built on handler.Context.
func Handler[C handler.Context](b *Bundle) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			b.ServeHTTP(w, r)
			return nil
		}
	}
}
