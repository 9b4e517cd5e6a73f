// Package logger is a small factory around log/slog with functional options,
// JSON and text output formats, environment-driven configuration, and a few
// attribute helpers (Error, Errors, Group, Component) shared across the
// library's components.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(logger.Component("health")),
//	)
//	log.Info("check registered", "name", "database")
//
// Or from the environment (LOG_LEVEL, LOG_FORMAT, LOG_SOURCE):
//
//	cfg, err := config.Load[logger.Config]()
//	log := logger.NewFromConfig(cfg)
package logger
