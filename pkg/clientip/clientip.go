package clientip

import (
	"net"
	"net/http"
	"strings"
)

// headers are checked in order; the first valid address wins.
var headers = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client IP address of r.
// Falls back to the raw RemoteAddr when no valid address is found.
func GetIP(r *http.Request) string {
	for _, h := range headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		// X-Forwarded-For: client, proxy1, proxy2
		if first, _, found := strings.Cut(value, ","); found {
			value = first
		}
		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// normalize validates s and returns its canonical form, or "" if invalid.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
