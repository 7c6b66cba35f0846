package accesslog

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps field names to extractors.
// Fields are registered during startup; Freeze makes the registry read-only.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	fields map[string]Field
	frozen bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[string]Field)}
}

// Register adds a field under name.
func (r *Registry) Register(name string, f Field) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFieldSpec)
	}
	if f == nil {
		return fmt.Errorf("%w: %q", ErrNilField, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrRegistryFrozen, name)
	}
	if _, ok := r.fields[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	r.fields[name] = f
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, f Field) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup returns the field registered under name.
func (r *Registry) Lookup(name string) (Field, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fields[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Freeze rejects further registrations.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}
