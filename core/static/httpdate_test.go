package static

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseHTTPDate(t *testing.T) {
	t.Parallel()

	want := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "imf_fixdate", value: "Sun, 06 Nov 1994 08:49:37 GMT", ok: true},
		{name: "rfc850", value: "Sunday, 06-Nov-94 08:49:37 GMT", ok: true},
		{name: "ansi_c", value: "Sun Nov  6 08:49:37 1994", ok: true},
		{name: "numeric_offset", value: "Sun, 06 Nov 1994 10:49:37 +0200", ok: true},
		{name: "surrounding_spaces", value: "  Sun, 06 Nov 1994 08:49:37 GMT ", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "garbage", value: "not a date", ok: false},
		{name: "iso8601", value: "1994-11-06T08:49:37Z", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseHTTPDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, want.Equal(got), "got %s", got)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestFormatHTTPDate(t *testing.T) {
	t.Parallel()

	local := time.Date(1994, time.November, 6, 9, 49, 37, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", formatHTTPDate(local))

	parsed, err := http.ParseTime(formatHTTPDate(local))
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(local))
}

func TestCleanName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rest string
		name string
		ok   bool
	}{
		{rest: "", name: ".", ok: true},
		{rest: "/", name: ".", ok: true},
		{rest: "/a/b.txt", name: "a/b.txt", ok: true},
		{rest: "a/./b/", name: "a/b", ok: true},
		{rest: "/../a", ok: false},
		{rest: "/a/..", ok: false},
		{rest: "/a\\b", ok: false},
		{rest: "/a\x00", ok: false},
		{rest: "/..a/b", name: "..a/b", ok: true},
	}

	for _, tt := range tests {
		name, ok := cleanName(tt.rest)
		assert.Equal(t, tt.ok, ok, tt.rest)
		if tt.ok {
			assert.Equal(t, tt.name, name, tt.rest)
		}
	}
}
