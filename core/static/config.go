package static

import "io/fs"

// Config holds bundle configuration with environment variable support.
type Config struct {
	// URL prefix the bundle is mounted under ("/" for the root)
	MountPrefix string `env:"ASSETS_MOUNT_PREFIX" envDefault:"/"`

	// Directory inside the bundled filesystem used as the root
	BasePath string `env:"ASSETS_BASE_PATH" envDefault:"static"`

	// Files tried, in order, when a path names a directory
	WelcomeFiles []string `env:"ASSETS_WELCOME_FILES" envDefault:"index.html" envSeparator:","`

	// Cache resolved metadata; the bundle must not change at runtime
	MetadataCache bool `env:"ASSETS_METADATA_CACHE" envDefault:"true"`
}

// NewFromConfig creates a Bundle from configuration.
// Additional options are applied after the config and can override it.
func NewFromConfig(fsys fs.FS, cfg Config, opts ...Option) (*Bundle, error) {
	configOpts := []Option{
		WithMountPrefix(cfg.MountPrefix),
		WithBasePath(cfg.BasePath),
	}

	if len(cfg.WelcomeFiles) > 0 {
		configOpts = append(configOpts, WithWelcomeFiles(cfg.WelcomeFiles...))
	}
	if cfg.MetadataCache {
		configOpts = append(configOpts, WithMetadataCache())
	}

	configOpts = append(configOpts, opts...)
	return New(fsys, configOpts...)
}
