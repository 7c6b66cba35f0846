// Package config loads typed configuration from environment variables.
//
// Load parses a tagged struct with caarlos0/env. The first call also reads a
// .env file from the working directory without overriding variables that are
// already set. Results are cached per struct type, so later calls for the same
// type return the first parsed value:
//
//	var cfg static.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning an error. Parse skips both the .env
// file and the cache. Reset drops cached values between tests.
//
// Component packages ship their own tagged structs (static.Config,
// accesslog.Config, server.Config) so a binary only declares what it adds.
package config
