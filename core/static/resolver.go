package static

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/assetlog/core/logger"
)

// Resource describes a regular file inside the bundle.
// Values are immutable and may be shared between requests.
type Resource struct {
	// Name is the slash-separated path of the file relative to the bundle root.
	Name string
	// ModTime is the modification time truncated to whole seconds, in UTC.
	ModTime time.Time
	// Size is the content length in bytes.
	Size int64
	// ContentType is derived from the file extension.
	ContentType string

	fsys fs.FS
}

// Open opens the resource content for reading. The caller must close the file.
func (r *Resource) Open() (fs.File, error) {
	return r.fsys.Open(r.Name)
}

// Resolver maps request paths to bundled resources.
// It is safe for concurrent use.
type Resolver struct {
	fsys         fs.FS
	prefix       string
	welcomeFiles []string
	modTime      time.Time
	cache        *sync.Map
	logger       *slog.Logger
}

// NewResolver creates a resolver over fsys.
// The bundle root (after WithBasePath) must exist and be a directory.
func NewResolver(fsys fs.FS, opts ...Option) (*Resolver, error) {
	cfg := defaultBundleConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return newResolver(fsys, cfg)
}

func newResolver(fsys fs.FS, cfg *bundleConfig) (*Resolver, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}

	if base := strings.Trim(path.Clean("/"+cfg.basePath), "/"); base != "" {
		sub, err := fs.Sub(fsys, base)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidBasePath, cfg.basePath, err)
		}
		fsys = sub
	}

	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBundleUnreadable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w %q: not a directory", ErrInvalidBasePath, cfg.basePath)
	}

	welcome := make([]string, 0, len(cfg.welcomeFiles))
	for _, name := range cfg.welcomeFiles {
		name = strings.Trim(name, "/")
		if name == "" || !fs.ValidPath(name) {
			return nil, fmt.Errorf("invalid welcome file %q", name)
		}
		welcome = append(welcome, name)
	}

	modTime := cfg.modTime
	if modTime.IsZero() {
		modTime = time.Now()
	}

	r := &Resolver{
		fsys:         fsys,
		prefix:       normalizePrefix(cfg.mountPrefix),
		welcomeFiles: welcome,
		modTime:      modTime.UTC().Truncate(time.Second),
		logger:       cfg.logger,
	}
	if cfg.metadataCache {
		r.cache = &sync.Map{}
	}
	return r, nil
}

// MountPrefix returns the normalized URL prefix. The root mount is "".
func (r *Resolver) MountPrefix() string {
	return r.prefix
}

// Matches reports whether requestPath falls under the mount prefix.
func (r *Resolver) Matches(requestPath string) bool {
	_, ok := r.stripPrefix(requestPath)
	return ok
}

// Resolve maps a URL path to a resource.
// It returns ErrNotFound for paths outside the mount prefix, paths that try to
// escape the bundle, missing files and directories without a welcome file.
func (r *Resolver) Resolve(requestPath string) (*Resource, error) {
	rest, ok := r.stripPrefix(requestPath)
	if !ok {
		return nil, ErrNotFound
	}

	name, ok := cleanName(rest)
	if !ok {
		r.logger.Warn("rejected bundle path",
			logger.Component("static"),
			logger.Path(requestPath),
		)
		return nil, ErrNotFound
	}

	if r.cache != nil {
		if res, ok := r.cache.Load(name); ok {
			return res.(*Resource), nil
		}
	}

	res, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	// Only hits are cached: misses are attacker controlled.
	if r.cache != nil {
		r.cache.Store(name, res)
	}
	return res, nil
}

func (r *Resolver) lookup(name string) (*Resource, error) {
	info, err := fs.Stat(r.fsys, name)
	if err != nil {
		return nil, ErrNotFound
	}

	if info.IsDir() {
		for _, welcome := range r.welcomeFiles {
			candidate := path.Join(name, welcome)
			ci, err := fs.Stat(r.fsys, candidate)
			if err == nil && ci.Mode().IsRegular() {
				return r.newResource(candidate, ci), nil
			}
		}
		return nil, ErrNotFound
	}

	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}
	return r.newResource(name, info), nil
}

func (r *Resolver) newResource(name string, info fs.FileInfo) *Resource {
	modTime := info.ModTime()
	if modTime.IsZero() {
		modTime = r.modTime
	}
	return &Resource{
		Name:        name,
		ModTime:     modTime.UTC().Truncate(time.Second),
		Size:        info.Size(),
		ContentType: ContentTypeFor(name),
		fsys:        r.fsys,
	}
}

// stripPrefix removes the mount prefix on a segment boundary.
func (r *Resolver) stripPrefix(requestPath string) (string, bool) {
	if r.prefix == "" {
		return requestPath, true
	}
	if requestPath == r.prefix {
		return "", true
	}
	if strings.HasPrefix(requestPath, r.prefix+"/") {
		return requestPath[len(r.prefix):], true
	}
	return "", false
}

// cleanName converts the remainder of a URL path into an fs.FS name.
// Paths containing "..", backslashes or NUL bytes are rejected outright
// instead of being cleaned into something that looks legitimate.
func cleanName(rest string) (string, bool) {
	if strings.ContainsAny(rest, "\\\x00") {
		return "", false
	}

	parts := make([]string, 0, strings.Count(rest, "/")+1)
	for _, seg := range strings.Split(rest, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			return "", false
		}
		parts = append(parts, seg)
	}

	if len(parts) == 0 {
		return ".", true
	}
	name := strings.Join(parts, "/")
	return name, fs.ValidPath(name)
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
