package accesslog

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/dmitrymomot/assetlog/core/logger"
)

// boundField is a validated spec with its extractor resolved at construction.
type boundField struct {
	spec FieldSpec
	fn   Field
}

// sink wraps the open log destination so it can live in an atomic.Pointer.
type sink struct {
	w io.WriteCloser
}

// Writer appends one tab-separated line per finished request to a file.
//
// Failures never reach request handling: an unusable file disables logging
// with a warning, and a failed write is reported and dropped.
// Writer is safe for concurrent use.
type Writer struct {
	fileName  string
	disabled  bool
	fields    []boundField
	blacklist []string
	logger    *slog.Logger

	sink atomic.Pointer[sink]

	// mu serializes rendering and writing so lines never interleave.
	mu      sync.Mutex
	buf     strings.Builder
	encoder *encoding.Encoder
}

// New validates cfg against reg and creates a Writer.
// Unknown field names fail here, before the writer can accept traffic.
func New(cfg Config, reg *Registry, opts ...Option) (*Writer, error) {
	specs, err := ValidateFields(reg, cfg.Fields)
	if err != nil {
		return nil, err
	}
	if !cfg.Disabled && strings.TrimSpace(cfg.FileName) == "" {
		return nil, ErrMissingFileName
	}

	fields := make([]boundField, 0, len(specs))
	for _, spec := range specs {
		fn, _ := reg.Lookup(spec.Name)
		fields = append(fields, boundField{spec: spec, fn: fn})
	}

	blacklist := make([]string, 0, len(cfg.Blacklist))
	for _, prefix := range cfg.Blacklist {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			blacklist = append(blacklist, prefix)
		}
	}

	w := &Writer{
		fileName:  cfg.FileName,
		disabled:  cfg.Disabled,
		fields:    fields,
		blacklist: blacklist,
		logger:    logger.Discard(),
		encoder:   unicode.UTF8.NewEncoder(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// MustNew is like New but panics on error. Intended for program startup.
func MustNew(cfg Config, reg *Registry, opts ...Option) *Writer {
	w, err := New(cfg, reg, opts...)
	if err != nil {
		panic("accesslog: " + err.Error())
	}
	return w
}

// FileName returns the configured log file path.
func (w *Writer) FileName() string {
	return w.fileName
}

// Fields returns the configured field specs in output order.
func (w *Writer) Fields() []FieldSpec {
	specs := make([]FieldSpec, len(w.fields))
	for i, f := range w.fields {
		specs[i] = f.spec
	}
	return specs
}

// Enabled reports whether a log file is currently open.
func (w *Writer) Enabled() bool {
	return w.sink.Load() != nil
}

// Start opens the log file in append mode, creating it and its parent
// directories when missing. Problems are logged and leave logging disabled.
func (w *Writer) Start() {
	if w.disabled {
		w.logger.Info("access log disabled by configuration", logger.Component("accesslog"))
		return
	}

	path := w.fileName
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		w.logger.Warn("access log path exists, but is not a file",
			logger.Component("accesslog"),
			logger.File(path),
		)
		return
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if _, statErr := os.Stat(dir); statErr != nil {
			w.logger.Warn("cannot create access log directory and it does not exist",
				logger.Component("accesslog"),
				logger.File(dir),
				logger.Error(err),
			)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		w.logger.Error("could not open access log",
			logger.Component("accesslog"),
			logger.File(path),
			logger.Error(err),
		)
		return
	}

	w.logger.Info("opened access log",
		logger.Component("accesslog"),
		logger.File(path),
	)
	w.install(f)
}

// install publishes wc as the sink unless one is already installed,
// in which case wc is closed.
func (w *Writer) install(wc io.WriteCloser) {
	if !w.sink.CompareAndSwap(nil, &sink{w: wc}) {
		_ = wc.Close()
	}
}

// Stop closes the log file. Log is a no-op until the next Start.
func (w *Writer) Stop() {
	s := w.sink.Swap(nil)
	if s == nil {
		return
	}

	// Wait for an in-flight line before closing.
	w.mu.Lock()
	err := s.w.Close()
	w.mu.Unlock()

	if err != nil {
		w.logger.Warn("failed to close access log",
			logger.Component("accesslog"),
			logger.File(w.fileName),
			logger.Error(err),
		)
		return
	}
	w.logger.Info("closed access log",
		logger.Component("accesslog"),
		logger.File(w.fileName),
	)
}

// Log writes one line for a finished request.
// Blacklisted paths and a stopped writer produce no output.
func (w *Writer) Log(r *http.Request, resp ResponseInfo) {
	if w.blacklisted(requestURI(r)) {
		return
	}
	if w.sink.Load() == nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Re-check under the lock: Stop may have run in between.
	s := w.sink.Load()
	if s == nil {
		return
	}

	line := w.render(r, resp)
	if _, err := io.WriteString(s.w, line); err != nil {
		w.logger.Warn("failed to write access log line",
			logger.Component("accesslog"),
			logger.File(w.fileName),
			logger.Error(err),
		)
	}
}

func (w *Writer) blacklisted(uri string) bool {
	for _, prefix := range w.blacklist {
		if strings.HasPrefix(uri, prefix) {
			return true
		}
	}
	return false
}

// render builds one line. Callers must hold w.mu.
func (w *Writer) render(r *http.Request, resp ResponseInfo) string {
	w.buf.Reset()
	for i, f := range w.fields {
		if i > 0 {
			w.buf.WriteByte('\t')
		}
		w.buf.WriteString(escapeValue(formatValue(w.value(f, r, resp))))
	}

	line, err := w.encoder.String(w.buf.String())
	if err != nil {
		line = strings.ToValidUTF8(w.buf.String(), "�")
	}
	return line + "\n"
}

// value runs one extractor, turning a panic into an empty value.
func (w *Writer) value(f boundField, r *http.Request, resp ResponseInfo) (v any) {
	defer func() {
		if rec := recover(); rec != nil {
			w.logger.Warn("access log field panicked",
				logger.Component("accesslog"),
				slog.String("field", f.spec.String()),
				logger.Error(fmt.Errorf("%v", rec)),
			)
			v = nil
		}
	}()
	return f.fn(r, resp, f.spec.Param)
}
