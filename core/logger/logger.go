package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type format int

const (
	formatJSON format = iota
	formatText
)

type config struct {
	level  slog.Leveler
	format format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures a logger created by New.
type Option func(*config)

// New creates a slog.Logger. Defaults: JSON to stdout at info level.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: formatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var h slog.Handler
	switch cfg.format {
	case formatText:
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) {
		if level != nil {
			c.level = level
		}
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = formatJSON
	}
}

// WithTextFormatter switches output to logfmt-style text.
func WithTextFormatter() Option {
	return func(c *config) {
		c.format = formatText
	}
}

// WithFormat selects the formatter by name: "text" or "json".
// Unknown names keep JSON.
func WithFormat(name string) Option {
	return func(c *config) {
		if strings.EqualFold(strings.TrimSpace(name), "text") {
			c.format = formatText
			return
		}
		c.format = formatJSON
	}
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level, tagged with the service name.
func WithDevelopment(service string) Option {
	return func(c *config) {
		c.format = formatText
		c.level = slog.LevelDebug
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level, tagged with the service name.
func WithProduction(service string) Option {
	return func(c *config) {
		c.format = formatJSON
		c.level = slog.LevelInfo
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "production"))
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
