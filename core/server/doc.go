// Package server provides an HTTP server with graceful shutdown, configurable
// options, and production-ready defaults. It wraps the standard http.Server and
// ties the lifetime of long-lived components to it.
//
// # Key Features
//
//   - Graceful shutdown with configurable timeout
//   - TLS/HTTPS from certificate and key files
//   - Components started before serving and stopped after shutdown
//   - Structured logging integration
//   - errgroup-friendly Run
//
// # Basic Usage
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(10*time.Second),
//		server.WithLogger(log),
//	)
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	if err := g.Wait(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// # Components
//
// A Component has Start and Stop methods. Registered components are started
// after the listener is bound and before the first request is served. They are
// stopped in reverse order once in-flight requests have finished, so a request
// log sees the last request of the process:
//
//	accessLog := accesslog.MustNew(cfg, reg)
//	srv := server.New(":8080", server.WithComponents(accessLog))
//
// # Configuration
//
// Config carries env tags for use with the config package:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// Setting both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE enables HTTPS with
// DefaultTLSConfig.
//
// # Server Defaults
//
//   - ReadTimeout: 15 seconds
//   - WriteTimeout: 15 seconds
//   - IdleTimeout: 60 seconds
//   - MaxHeaderBytes: 1MB
//   - Graceful shutdown timeout: 30 seconds
//   - Logger: discards everything
package server
