package main

import (
	"github.com/dmitrymomot/assetlog/core/accesslog"
	"github.com/dmitrymomot/assetlog/core/server"
	"github.com/dmitrymomot/assetlog/core/static"
)

// Config is the assetserver configuration, read from the environment.
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"assetserver"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Diagnostic slog record per request, in addition to the access log file
	RequestLogging bool `env:"REQUEST_LOGGING" envDefault:"false"`

	Server    server.Config
	Assets    static.Config
	AccessLog accesslog.Config
}
