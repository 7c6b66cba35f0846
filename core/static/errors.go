package static

import "errors"

var (
	// ErrNotFound is returned by Resolve when a path does not name a servable resource.
	ErrNotFound = errors.New("resource not found")

	// ErrNilFS is returned when a bundle is constructed without a filesystem.
	ErrNilFS = errors.New("bundle filesystem is required")

	// ErrInvalidBasePath is returned when the base path cannot be used as a sub-filesystem.
	ErrInvalidBasePath = errors.New("invalid bundle base path")

	// ErrBundleUnreadable is returned when the bundle root cannot be opened.
	ErrBundleUnreadable = errors.New("bundle root is not accessible")
)
