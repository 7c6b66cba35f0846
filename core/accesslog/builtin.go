package accesslog

import (
	"net"
	"net/http"

	"github.com/dmitrymomot/assetlog/pkg/clientip"
)

// Builtin field names.
const (
	FieldTimestamp      = "timestamp"
	FieldRemoteAddr     = "remoteAddr"
	FieldClientIP       = "clientIp"
	FieldMethod         = "method"
	FieldURI            = "uri"
	FieldURL            = "url"
	FieldQuery          = "query"
	FieldProtocol       = "protocol"
	FieldHost           = "host"
	FieldHeader         = "header"
	FieldResponseHeader = "responseHeader"
	FieldCookie         = "cookie"
	FieldStatus         = "status"
	FieldBytes          = "bytes"
	FieldElapsed        = "elapsed"
	FieldUserAgent      = "userAgent"
	FieldReferer        = "referer"
	FieldRequestID      = "requestId"
)

// DefaultRequestIDHeader is read by the requestId field when no parameter is given.
const DefaultRequestIDHeader = "X-Request-ID"

// DefaultRegistry returns a new registry holding the builtin fields.
// The registry is not frozen, so applications can add their own fields.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, f := range builtinFields() {
		r.MustRegister(name, f)
	}
	return r
}

func builtinFields() map[string]Field {
	return map[string]Field{
		FieldTimestamp:      timestampField,
		FieldRemoteAddr:     remoteAddrField,
		FieldClientIP:       func(r *http.Request, _ ResponseInfo, _ string) any { return clientip.GetIP(r) },
		FieldMethod:         func(r *http.Request, _ ResponseInfo, _ string) any { return r.Method },
		FieldURI:            func(r *http.Request, _ ResponseInfo, _ string) any { return requestURI(r) },
		FieldURL:            urlField,
		FieldQuery:          func(r *http.Request, _ ResponseInfo, _ string) any { return r.URL.RawQuery },
		FieldProtocol:       func(r *http.Request, _ ResponseInfo, _ string) any { return r.Proto },
		FieldHost:           func(r *http.Request, _ ResponseInfo, _ string) any { return r.Host },
		FieldHeader:         headerField,
		FieldResponseHeader: responseHeaderField,
		FieldCookie:         cookieField,
		FieldStatus:         func(_ *http.Request, resp ResponseInfo, _ string) any { return resp.Status },
		FieldBytes:          func(_ *http.Request, resp ResponseInfo, _ string) any { return resp.Bytes },
		FieldElapsed:        func(_ *http.Request, resp ResponseInfo, _ string) any { return resp.Duration.Milliseconds() },
		FieldUserAgent:      func(r *http.Request, _ ResponseInfo, _ string) any { return r.UserAgent() },
		FieldReferer:        func(r *http.Request, _ ResponseInfo, _ string) any { return r.Referer() },
		FieldRequestID:      requestIDField,
	}
}

// timestampField formats the request start time.
// Params: "" (RFC 3339 with milliseconds, UTC), "unix", "unixms".
func timestampField(_ *http.Request, resp ResponseInfo, param string) any {
	switch param {
	case "unix":
		return resp.Start.Unix()
	case "unixms":
		return resp.Start.UnixMilli()
	default:
		return resp.Start.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
}

// remoteAddrField logs the client host without the port.
func remoteAddrField(r *http.Request, _ ResponseInfo, _ string) any {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func urlField(r *http.Request, _ ResponseInfo, _ string) any {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

func headerField(r *http.Request, _ ResponseInfo, param string) any {
	if param == "" {
		return nil
	}
	return r.Header.Get(param)
}

func responseHeaderField(_ *http.Request, resp ResponseInfo, param string) any {
	if param == "" {
		return nil
	}
	return resp.Header.Get(param)
}

func cookieField(r *http.Request, _ ResponseInfo, param string) any {
	if param == "" {
		return nil
	}
	c, err := r.Cookie(param)
	if err != nil {
		return nil
	}
	return c.Value
}

func requestIDField(r *http.Request, resp ResponseInfo, param string) any {
	name := param
	if name == "" {
		name = DefaultRequestIDHeader
	}
	if id := r.Header.Get(name); id != "" {
		return id
	}
	return resp.Header.Get(name)
}

// requestURI returns the escaped request path without the query string.
func requestURI(r *http.Request) string {
	if r.URL == nil {
		return r.RequestURI
	}
	return r.URL.EscapedPath()
}
