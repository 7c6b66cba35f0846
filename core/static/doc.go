// Package static serves read-only resources bundled with the application binary.
//
// The bundle is any fs.FS, normally an embed.FS produced at build time. Nothing
// outside the bundle is ever reachable: request paths are resolved against the
// bundle root and paths containing ".." segments are rejected before lookup.
//
// # Features
//
//   - GET and HEAD only; other methods on a mounted path get 405 Method Not Allowed
//   - Welcome-file fallback for directory paths (default "index.html")
//   - No directory listings: a directory without a welcome file is a 404
//   - Conditional GET through If-Modified-Since / Last-Modified at one-second resolution
//   - Fixed extension to Content-Type table, independent of the host mime database
//   - Optional metadata cache for immutable bundles
//
// Byte ranges and ETags are not supported.
//
// # Basic Usage
//
//	//go:embed static/*
//	var assets embed.FS
//
//	bundle, err := static.New(assets,
//		static.WithBasePath("static"),
//		static.WithMountPrefix("/assets"),
//		static.WithMetadataCache(),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("/assets/", bundle)
//
// Use Middleware to put the bundle in front of other handlers. Paths under the
// mount prefix are always answered by the bundle, everything else falls through:
//
//	handler := bundle.Middleware(apiHandler)
//
// # Typed Handlers
//
// The core/handler package defines a generic request context and handler
// signature for routers that do not use plain http.Handler. Bundle does not
// depend on such a router; Handler is the extension point that adapts a bundle
// to one:
//
//	r.Get("/assets/*", static.Handler[*myapp.Context](bundle))
//
// The assetserver binary mounts the bundle on net/http directly and does not
// use this adapter.
//
// # Modification Times
//
// embed.FS reports a zero modification time for every file. Such resources use
// the bundle time instead: the value passed to WithModTime, or the time the
// bundle was created. Pass the build time to keep Last-Modified stable across
// restarts:
//
//	static.New(assets, static.WithModTime(buildTime))
//
// # Configuration
//
// Config carries env tags for use with the config package:
//
//	var cfg static.Config
//	config.MustLoad(&cfg)
//	bundle, err := static.NewFromConfig(assets, cfg)
package static
