package accesslog

import "log/slog"

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the logger for lifecycle and write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}
