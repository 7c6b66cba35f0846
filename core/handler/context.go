package handler

import (
	"context"
	"net/http"
)

// Context is the request context contract shared by typed handlers.
// Static handlers only need the request and the response writer.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
}
