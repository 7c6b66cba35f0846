package handler

import "net/http"

// Response renders an HTTP response: headers, status code and body.
// A returned error is passed to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a request handler bound to a custom context type.
type HandlerFunc[C Context] func(ctx C) Response
