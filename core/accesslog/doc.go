// Package accesslog writes a structured access log: one tab-separated line per
// finished request, built from an ordered list of named fields.
//
// # Fields
//
// A field is a function registered under a name in a Registry. Configuration
// refers to fields by name, optionally with a parameter after the first colon:
//
//	cfg := accesslog.Config{
//		FileName:  "/var/log/app/access.log",
//		Fields:    []string{"timestamp", "method", "uri", "status", "header:X-Request-ID"},
//		Blacklist: []string{"/healthz", "/metrics"},
//	}
//
// DefaultRegistry holds the builtin fields (see the Field* constants).
// Applications add their own before creating the writer:
//
//	reg := accesslog.DefaultRegistry()
//	reg.MustRegister("tenant", func(r *http.Request, _ accesslog.ResponseInfo, _ string) any {
//		return r.Header.Get("X-Tenant")
//	})
//	reg.Freeze()
//
// New rejects unknown field names, so a typo fails at startup rather than
// while serving traffic.
//
// # Lifecycle
//
//	w, err := accesslog.New(cfg, reg, accesslog.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	w.Start()
//	defer w.Stop()
//
//	handler := accesslog.Middleware(w)(mux)
//
// Start never fails: if the path is a directory or the file cannot be opened,
// a warning is logged and Log does nothing. Stop closes the file; a later Start
// reopens it in append mode.
//
// # Line Format
//
// Values are joined with tabs and terminated with a newline. nil becomes an
// empty string, invalid UTF-8 is replaced with U+FFFD, and tab, CR and LF
// inside a value are written as \t, \r and \n. Concurrent requests never
// interleave within a line.
package accesslog
