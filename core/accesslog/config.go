package accesslog

// Config holds access log configuration with environment variable support.
type Config struct {
	// Disable the file log entirely; Start becomes a no-op
	Disabled bool `env:"ACCESS_LOG_DISABLED" envDefault:"false"`

	// Append-only log file; parent directories are created on Start
	FileName string `env:"ACCESS_LOG_FILE" envDefault:"logs/access.log"`

	// Ordered field specs, "name" or "name:param"
	Fields []string `env:"ACCESS_LOG_FIELDS" envDefault:"timestamp,remoteAddr,method,uri,status,bytes,elapsed,header:User-Agent" envSeparator:","`

	// Request path prefixes that are never logged
	Blacklist []string `env:"ACCESS_LOG_BLACKLIST" envDefault:"/healthz" envSeparator:","`
}

// DefaultFields is the field list used by DefaultConfig.
var DefaultFields = []string{
	FieldTimestamp,
	FieldRemoteAddr,
	FieldMethod,
	FieldURI,
	FieldStatus,
	FieldBytes,
	FieldElapsed,
	FieldHeader + ":User-Agent",
}

// DefaultConfig returns a Config with the same defaults as the env tags.
func DefaultConfig() Config {
	return Config{
		FileName:  "logs/access.log",
		Fields:    DefaultFields,
		Blacklist: []string{"/healthz"},
	}
}
