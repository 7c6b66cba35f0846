package static

import (
	"net/http"
	"strings"
	"time"
)

// formatHTTPDate renders t in the IMF-fixdate form used by Last-Modified.
func formatHTTPDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// parseHTTPDate parses a conditional request header value.
// All three HTTP-date forms are accepted, plus RFC 1123 with a numeric zone
// offset. Other zone names are not trusted and the value is rejected.
func parseHTTPDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := http.ParseTime(value); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC1123Z, value); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
