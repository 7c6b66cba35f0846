package static

import (
	"io"
	"log/slog"
	"time"
)

// DefaultWelcomeFiles is the welcome-file list used when none is configured.
var DefaultWelcomeFiles = []string{"index.html"}

// bundleConfig holds configuration shared by the resolver and the bundle handler.
type bundleConfig struct {
	mountPrefix   string
	basePath      string
	welcomeFiles  []string
	modTime       time.Time
	metadataCache bool
	logger        *slog.Logger
}

func defaultBundleConfig() *bundleConfig {
	return &bundleConfig{
		welcomeFiles: DefaultWelcomeFiles,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures bundle resolution and serving.
type Option func(*bundleConfig)

// WithMountPrefix sets the URL prefix the bundle is served under.
// Requests outside the prefix are not matched by the bundle.
//
// For example, WithMountPrefix("/assets") serves "/assets/app.css" from "app.css".
func WithMountPrefix(prefix string) Option {
	return func(c *bundleConfig) {
		c.mountPrefix = prefix
	}
}

// WithBasePath roots the bundle at a sub-directory of the filesystem.
// The path uses forward slashes regardless of OS.
func WithBasePath(dir string) Option {
	return func(c *bundleConfig) {
		c.basePath = dir
	}
}

// WithWelcomeFiles sets the ordered list of files tried when a path names a directory.
// An empty list disables welcome-file resolution, so every directory is a 404.
func WithWelcomeFiles(names ...string) Option {
	return func(c *bundleConfig) {
		c.welcomeFiles = names
	}
}

// WithModTime sets the modification time reported for resources whose
// filesystem entry has none. embed.FS never records modification times.
func WithModTime(t time.Time) Option {
	return func(c *bundleConfig) {
		c.modTime = t
	}
}

// WithMetadataCache enables caching of resolved resource metadata.
// Only use it with filesystems that do not change while the process runs.
func WithMetadataCache() Option {
	return func(c *bundleConfig) {
		c.metadataCache = true
	}
}

// WithLogger sets the logger used for traversal attempts and I/O failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *bundleConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
