package accesslog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ResponseInfo describes a finished response.
type ResponseInfo struct {
	// Status is the HTTP status code sent to the client.
	Status int
	// Bytes is the number of body bytes written.
	Bytes int64
	// Header is the response header as sent.
	Header http.Header
	// Start is when the request reached the access log middleware.
	Start time.Time
	// Duration is the time spent serving the request.
	Duration time.Duration
}

// Field extracts one loggable value from a finished request.
// param is the part after the first ':' in the field spec, or "".
// Implementations must not modify the request or response and must be safe
// for concurrent use. A nil result is logged as an empty string.
type Field func(r *http.Request, resp ResponseInfo, param string) any

// FieldSpec is a parsed field reference: "name" or "name:param".
type FieldSpec struct {
	Name  string
	Param string
}

// String returns the spec in its configured form.
func (s FieldSpec) String() string {
	if s.Param == "" {
		return s.Name
	}
	return s.Name + ":" + s.Param
}

// ParseFieldSpec splits a configured field spec on the first ':'.
// The parameter may itself contain colons.
func ParseFieldSpec(raw string) (FieldSpec, error) {
	name, param, _ := strings.Cut(strings.TrimSpace(raw), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return FieldSpec{}, fmt.Errorf("%w: %q", ErrInvalidFieldSpec, raw)
	}
	return FieldSpec{Name: name, Param: strings.TrimSpace(param)}, nil
}

// ValidateFields parses specs and checks every name against the registry.
// All problems are reported together.
func ValidateFields(reg *Registry, specs []string) ([]FieldSpec, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if len(specs) == 0 {
		return nil, ErrNoFields
	}

	parsed := make([]FieldSpec, 0, len(specs))
	var errs []error
	for _, raw := range specs {
		spec, err := ParseFieldSpec(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := reg.Lookup(spec.Name); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownField, spec.Name))
			continue
		}
		parsed = append(parsed, spec)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return parsed, nil
}
