package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/assetlog/core/logger"
)

// Component is a long-lived dependency whose lifetime follows the server,
// such as a file-backed request log. Start and Stop must not block for long
// and must tolerate being called more than once.
type Component interface {
	Start()
	Stop()
}

// Server wraps http.Server with graceful shutdown and configuration options.
// Safe for concurrent use.
type Server struct {
	mu             sync.RWMutex
	addr           string
	server         *http.Server
	listener       net.Listener
	logger         *slog.Logger
	shutdown       time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration
	maxHeaderBytes int
	tlsConfig      *tls.Config
	components     []Component
	running        bool
}

// New creates a new Server with the given address and options.
// Defaults to 30-second graceful shutdown timeout and a no-op logger.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:           addr,
		logger:         logger.Discard(),
		shutdown:       DefaultShutdownTimeout,
		readTimeout:    DefaultReadTimeout,
		writeTimeout:   DefaultWriteTimeout,
		idleTimeout:    DefaultIdleTimeout,
		maxHeaderBytes: DefaultMaxHeaderBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Addr returns the bound address while the server is running,
// otherwise the configured one.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Running reports whether the server is accepting connections.
func (s *Server) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Start binds the address, starts registered components and serves until
// the context is canceled or an error occurs.
// Returns context.Err() when the context is canceled.
// Use Stop() for graceful shutdown.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return err
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrHTTPServer, err)
	}

	s.listener = ln
	s.running = true
	s.server = &http.Server{
		Addr:           s.addr,
		Handler:        handler,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		TLSConfig:      s.tlsConfig,
		ErrorLog:       slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
	srv := s.server
	hasTLS := s.tlsConfig != nil
	components := s.components
	s.mu.Unlock()

	for _, c := range components {
		c.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "starting server",
			logger.Component("server"),
			slog.String("addr", ln.Addr().String()),
			slog.Bool("tls", hasTLS),
		)

		var err error
		if hasTLS {
			err = srv.ServeTLS(ln, "", "")
		} else {
			err = srv.Serve(ln)
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.mu.Lock()
		s.running = false
		s.listener = nil
		s.mu.Unlock()
		stopComponents(components)
		return fmt.Errorf("%w: %w", ErrHTTPServer, err)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop gracefully shuts down the server using the configured timeout, then
// stops registered components in reverse order.
// Returns immediately if the server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running || s.server == nil {
		s.mu.Unlock()
		return nil
	}

	s.logger.Info("shutting down server gracefully",
		logger.Component("server"),
		logger.Duration(s.shutdown),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	s.running = false
	s.listener = nil
	components := s.components
	s.mu.Unlock()

	// Components outlive in-flight requests so their last writes land.
	stopComponents(components)

	if err != nil {
		s.logger.Error("server shutdown error", logger.Component("server"), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrHTTPShutdown, err)
	}

	s.logger.Info("server shutdown complete", logger.Component("server"))
	return nil
}

func stopComponents(components []Component) {
	for i := len(components) - 1; i >= 0; i-- {
		components[i].Stop()
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the server, monitors context cancellation,
// and performs graceful shutdown when the context is cancelled.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start(ctx, handler)
		}()

		select {
		case <-ctx.Done():
			if stopErr := s.Stop(); stopErr != nil {
				s.logger.Error("failed to stop server during context cancellation",
					logger.Component("server"),
					logger.Error(stopErr),
				)
			}
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Run is a convenience function that creates a server with default settings
// and serves until ctx is canceled, then shuts it down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr).Run(ctx, handler)()
}
