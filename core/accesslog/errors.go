package accesslog

import "errors"

var (
	// Configuration errors, returned from New before any request is served.
	ErrUnknownField     = errors.New("unknown access log field")
	ErrInvalidFieldSpec = errors.New("invalid access log field spec")
	ErrNoFields         = errors.New("access log needs at least one field")
	ErrMissingFileName  = errors.New("access log file name is required")
	ErrNilRegistry      = errors.New("access log field registry is required")

	// Registry errors
	ErrDuplicateField = errors.New("access log field already registered")
	ErrRegistryFrozen = errors.New("access log field registry is frozen")
	ErrNilField       = errors.New("access log field function is nil")
)
