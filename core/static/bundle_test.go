package static_test

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/assetlog/core/static"
)

const (
	simpleContent  = "this is simple content for a simple test\n"
	welcomeContent = "<html><body>the welcome file\n</body></html>"
)

var bundleModTime = time.Date(2024, time.March, 1, 12, 30, 45, 700_000_000, time.UTC)

// testContext provides a minimal context implementation for testing
type testContext struct {
	context.Context
	req *http.Request
	w   http.ResponseWriter
}

func (c *testContext) Request() *http.Request              { return c.req }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(key string) string             { return "" }

func newTestContext(req *http.Request, w http.ResponseWriter) *testContext {
	return &testContext{
		Context: context.Background(),
		req:     req,
		w:       w,
	}
}

func testBundleFS() fstest.MapFS {
	return fstest.MapFS{
		"test-resources/simple-content.txt": {Data: []byte(simpleContent), ModTime: bundleModTime},
		"test-resources/index.html":         {Data: []byte(welcomeContent), ModTime: bundleModTime},
		"test-resources/css/site.css":       {Data: []byte("body { color: blue; }"), ModTime: bundleModTime},
		"test-resources/img/logo.png":       {Data: []byte("PNG data"), ModTime: bundleModTime},
		"test-resources/docs/readme.md":     {Data: []byte("# readme"), ModTime: bundleModTime},
		"test-resources/data/blob.bin":      {Data: []byte{0x00, 0x01, 0x02}, ModTime: bundleModTime},
		"secret.txt":                        {Data: []byte("outside the bundle")},
	}
}

func newTestBundle(t *testing.T, opts ...static.Option) *static.Bundle {
	t.Helper()
	opts = append([]static.Option{static.WithBasePath("test-resources")}, opts...)
	b, err := static.New(testBundleFS(), opts...)
	require.NoError(t, err)
	return b
}

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestBundleGet(t *testing.T) {
	t.Parallel()

	b := newTestBundle(t, static.WithMountPrefix("/assets"))

	tests := []struct {
		name                string
		urlPath             string
		expectedStatus      int
		expectedBody        string
		expectedContentType string
	}{
		{
			name:                "simple_file",
			urlPath:             "/assets/simple-content.txt",
			expectedStatus:      http.StatusOK,
			expectedBody:        simpleContent,
			expectedContentType: "text/plain; charset=utf-8",
		},
		{
			name:                "nested_css_file",
			urlPath:             "/assets/css/site.css",
			expectedStatus:      http.StatusOK,
			expectedBody:        "body { color: blue; }",
			expectedContentType: "text/css; charset=utf-8",
		},
		{
			name:                "png_file",
			urlPath:             "/assets/img/logo.png",
			expectedStatus:      http.StatusOK,
			expectedBody:        "PNG data",
			expectedContentType: "image/png",
		},
		{
			name:                "unknown_extension_is_octet_stream",
			urlPath:             "/assets/data/blob.bin",
			expectedStatus:      http.StatusOK,
			expectedBody:        string([]byte{0x00, 0x01, 0x02}),
			expectedContentType: "application/octet-stream",
		},
		{
			name:           "missing_file_returns_404",
			urlPath:        "/assets/missing",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404 page not found\n",
		},
		{
			name:           "directory_without_welcome_file_returns_404",
			urlPath:        "/assets/css/",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404 page not found\n",
		},
		{
			name:           "dot_dot_segment_returns_404",
			urlPath:        "/assets/../secret.txt",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404 page not found\n",
		},
		{
			name:           "encoded_dot_dot_segment_returns_404",
			urlPath:        "/assets/%2e%2e/secret.txt",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404 page not found\n",
		},
		{
			name:           "path_outside_mount_returns_404",
			urlPath:        "/simple-content.txt",
			expectedStatus: http.StatusNotFound,
			expectedBody:   "404 page not found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(b, http.MethodGet, tt.urlPath, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedContentType, w.Header().Get("Content-Type"))
				assert.Equal(t, strconv.Itoa(len(tt.expectedBody)), w.Header().Get("Content-Length"))
				assert.Equal(t, "Fri, 01 Mar 2024 12:30:45 GMT", w.Header().Get("Last-Modified"))
			}
		})
	}
}

func TestBundleHead(t *testing.T) {
	t.Parallel()

	b := newTestBundle(t)

	get := serve(b, http.MethodGet, "/simple-content.txt", nil)
	head := serve(b, http.MethodHead, "/simple-content.txt", nil)

	require.Equal(t, http.StatusOK, head.Code)
	assert.Empty(t, head.Body.String())
	assert.Equal(t, simpleContent, get.Body.String())

	for _, key := range []string{"Last-Modified", "Content-Type", "Content-Length"} {
		assert.NotEmpty(t, head.Header().Get(key), key)
		assert.Equal(t, get.Header().Get(key), head.Header().Get(key), key)
	}
}

func TestBundleMethodNotAllowed(t *testing.T) {
	t.Parallel()

	b := newTestBundle(t)

	for _, method := range []string{
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			for _, target := range []string{"/simple-content.txt", "/missing"} {
				w := serve(b, method, target, nil)
				assert.Equal(t, http.StatusMethodNotAllowed, w.Code, target)
				assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"), target)
			}
		})
	}
}

func TestBundleWelcomeFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prefix  string
		targets []string
	}{
		{
			name:    "root_mount",
			prefix:  "",
			targets: []string{"/", "/index.html", "//"},
		},
		{
			name:    "prefixed_mount",
			prefix:  "/assets",
			targets: []string{"/assets", "/assets/", "/assets/index.html"},
		},
		{
			name:    "prefixed_mount_with_trailing_slash",
			prefix:  "/assets/",
			targets: []string{"/assets", "/assets/", "/assets/index.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newTestBundle(t, static.WithMountPrefix(tt.prefix))
			for _, target := range tt.targets {
				w := serve(b, http.MethodGet, target, nil)
				assert.Equal(t, http.StatusOK, w.Code, target)
				assert.Equal(t, welcomeContent, w.Body.String(), target)
				assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"), target)
			}
		})
	}
}

func TestBundleWelcomeFileOrder(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"docs/index.htm":  {Data: []byte("htm")},
		"docs/index.html": {Data: []byte("html")},
		"docs/dir/x.txt":  {Data: []byte("x")},
	}

	b, err := static.New(fsys, static.WithWelcomeFiles("default.html", "index.htm", "index.html"))
	require.NoError(t, err)

	w := serve(b, http.MethodGet, "/docs/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "htm", w.Body.String())

	w = serve(b, http.MethodGet, "/docs/dir", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	noWelcome, err := static.New(fsys, static.WithWelcomeFiles())
	require.NoError(t, err)

	w = serve(noWelcome, http.MethodGet, "/docs/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBundleConditionalGet(t *testing.T) {
	t.Parallel()

	b := newTestBundle(t)
	const target = "/simple-content.txt"

	first := serve(b, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, first.Code)
	lastModified := first.Header().Get("Last-Modified")
	require.NotEmpty(t, lastModified)

	second := serve(b, http.MethodGet, target, nil)
	assert.Equal(t, lastModified, second.Header().Get("Last-Modified"))

	parsed, err := http.ParseTime(lastModified)
	require.NoError(t, err)

	tests := []struct {
		name            string
		ifModifiedSince string
		expectedStatus  int
		expectedBody    string
	}{
		{
			name:            "same_time_returns_304",
			ifModifiedSince: lastModified,
			expectedStatus:  http.StatusNotModified,
		},
		{
			name:            "newer_time_returns_304",
			ifModifiedSince: parsed.Add(time.Hour).Format(http.TimeFormat),
			expectedStatus:  http.StatusNotModified,
		},
		{
			name:            "numeric_offset_returns_304",
			ifModifiedSince: parsed.In(time.FixedZone("", 2*60*60)).Format(time.RFC1123Z),
			expectedStatus:  http.StatusNotModified,
		},
		{
			name:            "rfc850_returns_304",
			ifModifiedSince: parsed.Format(time.RFC850),
			expectedStatus:  http.StatusNotModified,
		},
		{
			name:            "ten_minutes_older_returns_200",
			ifModifiedSince: parsed.Add(-10 * time.Minute).Format(http.TimeFormat),
			expectedStatus:  http.StatusOK,
			expectedBody:    simpleContent,
		},
		{
			name:            "one_second_older_returns_200",
			ifModifiedSince: parsed.Add(-time.Second).Format(http.TimeFormat),
			expectedStatus:  http.StatusOK,
			expectedBody:    simpleContent,
		},
		{
			name:            "unparseable_value_is_ignored",
			ifModifiedSince: "yesterday-ish",
			expectedStatus:  http.StatusOK,
			expectedBody:    simpleContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(b, http.MethodGet, target, http.Header{"If-Modified-Since": {tt.ifModifiedSince}})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, lastModified, w.Header().Get("Last-Modified"))
		})
	}
}

func TestBundleZeroModTime(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"app.js": {Data: []byte("run()")}}
	buildTime := time.Date(2025, time.January, 2, 3, 4, 5, 999, time.UTC)

	b, err := static.New(fsys, static.WithModTime(buildTime))
	require.NoError(t, err)

	w := serve(b, http.MethodGet, "/app.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Thu, 02 Jan 2025 03:04:05 GMT", w.Header().Get("Last-Modified"))
	assert.Equal(t, "text/javascript; charset=utf-8", w.Header().Get("Content-Type"))

	defaulted, err := static.New(fsys)
	require.NoError(t, err)

	first := serve(defaulted, http.MethodGet, "/app.js", nil)
	second := serve(defaulted, http.MethodGet, "/app.js", nil)
	assert.NotEmpty(t, first.Header().Get("Last-Modified"))
	assert.Equal(t, first.Header().Get("Last-Modified"), second.Header().Get("Last-Modified"))
}

// unreadableFS reports files through Stat but fails to open them.
type unreadableFS struct {
	fstest.MapFS
}

func (u unreadableFS) Open(name string) (fs.File, error) {
	if name == "." {
		return u.MapFS.Open(name)
	}
	return nil, errors.New("disk on fire")
}

func (u unreadableFS) Stat(name string) (fs.FileInfo, error) {
	return u.MapFS.Stat(name)
}

func TestBundleOpenFailureReturns500(t *testing.T) {
	t.Parallel()

	b, err := static.New(unreadableFS{fstest.MapFS{"broken.txt": {Data: []byte("x")}}})
	require.NoError(t, err)

	w := serve(b, http.MethodGet, "/broken.txt", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBundleMiddleware(t *testing.T) {
	t.Parallel()

	b := newTestBundle(t, static.WithMountPrefix("/static"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("app"))
	})
	h := b.Middleware(next)

	t.Run("matching_path_is_served_by_bundle", func(t *testing.T) {
		t.Parallel()

		w := serve(h, http.MethodGet, "/static/simple-content.txt", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, simpleContent, w.Body.String())
	})

	t.Run("missing_path_under_mount_is_404", func(t *testing.T) {
		t.Parallel()

		w := serve(h, http.MethodGet, "/static/nope.txt", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("post_under_mount_is_405_not_fall_through", func(t *testing.T) {
		t.Parallel()

		w := serve(h, http.MethodPost, "/static/simple-content.txt", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("other_paths_reach_next", func(t *testing.T) {
		t.Parallel()

		for _, target := range []string{"/api/users", "/staticfoo", "/"} {
			w := serve(h, http.MethodPost, target, nil)
			assert.Equal(t, http.StatusTeapot, w.Code, target)
			assert.Equal(t, "app", w.Body.String(), target)
		}
	})
}

func TestBundleTypedHandler(t *testing.T) {
	t.Parallel()

	handler := static.Handler[*testContext](newTestBundle(t))

	req := httptest.NewRequest(http.MethodGet, "/simple-content.txt", nil)
	w := httptest.NewRecorder()
	ctx := newTestContext(req, w)

	err := handler(ctx)(w, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, simpleContent, w.Body.String())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"static/home.html": {Data: []byte("home")},
	}

	b, err := static.NewFromConfig(fsys, static.Config{
		MountPrefix:   "/",
		BasePath:      "static",
		WelcomeFiles:  []string{"home.html"},
		MetadataCache: true,
	})
	require.NoError(t, err)

	w := serve(b, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home", w.Body.String())
}

func TestNewStartupValidation(t *testing.T) {
	t.Parallel()

	t.Run("nil_filesystem", func(t *testing.T) {
		t.Parallel()

		_, err := static.New(nil)
		assert.ErrorIs(t, err, static.ErrNilFS)
	})

	t.Run("missing_base_path", func(t *testing.T) {
		t.Parallel()

		_, err := static.New(testBundleFS(), static.WithBasePath("does-not-exist"))
		assert.ErrorIs(t, err, static.ErrBundleUnreadable)
	})

	t.Run("base_path_is_a_file", func(t *testing.T) {
		t.Parallel()

		_, err := static.New(testBundleFS(), static.WithBasePath("secret.txt"))
		assert.Error(t, err)
	})

	t.Run("must_new_panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			static.MustNew(testBundleFS(), static.WithBasePath("does-not-exist"))
		})
	})

	t.Run("invalid_welcome_file", func(t *testing.T) {
		t.Parallel()

		_, err := static.New(testBundleFS(), static.WithWelcomeFiles("../index.html"))
		assert.Error(t, err)
	})
}
