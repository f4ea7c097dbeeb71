// Package logger builds slog loggers with sane defaults for this library's
// collaborators, e.g. the token verification middleware.
//
//	log := logger.New(logger.WithProduction("roleauth"))
//	log.Info("started")
//
// Development and production presets cover the common cases; individual
// options override format, level, output, and static attributes.
package logger
