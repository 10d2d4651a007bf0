// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across the
// contracts tooling.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and attaches static attributes. Attribute helpers such as Method,
// Param and Contract return the slog.Attr values emitted when a checked call
// is rejected.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("contracts")),
//	)
//	log.Debug("call rejected", logger.Method("Resize"), logger.Param("width"))
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
