// Package logger provides slog construction and attribute helpers shared by the
// bundle handler, the access log and the server.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithProduction("assetserver"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops,
// so error attributes can be passed unconditionally:
//
//	log.Warn("cannot open access log",
//		logger.Component("accesslog"),
//		logger.File(path),
//		logger.Error(err),
//	)
//
// Components that accept a logger default to Discard when none is supplied.
package logger
