package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilTarget is returned when Load receives a nil pointer.
var ErrNilTarget = errors.New("config target must be a non-nil pointer")

var (
	dotenvOnce sync.Once
	cacheMu    sync.Mutex
	cache      = map[reflect.Type]any{}
)

// Load parses environment variables into cfg.
// A .env file in the working directory is loaded once, without overriding
// variables already set. Each type is parsed once and then served from cache.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	dotenvOnce.Do(func() {
		// A missing .env is the normal case outside development.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(cfg).Elem()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", key, err)
	}

	cache[key] = parsed
	*cfg = parsed
	return nil
}

// MustLoad is like Load but panics on error. Intended for program startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse reads environment variables into cfg without caching or .env loading.
// Useful in tests and for one-off structs.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}
	return env.Parse(cfg)
}

// Reset clears the cache. Intended for tests.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = map[reflect.Type]any{}
}
