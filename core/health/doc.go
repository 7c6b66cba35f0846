// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	mux.HandleFunc("GET /healthz", health.Liveness)
//	mux.Handle("GET /readyz", health.Readiness(log,
//		health.BundleCheck(func(p string) error {
//			_, err := bundle.Resolver().Resolve(p)
//			return err
//		}, "/"),
//	))
//
// Dependency checks must follow func(context.Context) error signature.
package health
