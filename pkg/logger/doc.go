// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers shared by the rulekit packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("billing"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
// The constraint package reports builder misuse through slog.Default, so
// installing a logger with SetAsDefault routes those records through it.
// The messages package accepts a logger explicitly.
//
// # Attributes
//
// Error, Errors, Code and Path return an empty slog.Attr for empty input,
// so they can be passed unconditionally:
//
//	log.Info("catalog loaded", logger.Path(path), logger.Error(err))
package logger
