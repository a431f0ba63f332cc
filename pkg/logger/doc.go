// Package logger builds configured log/slog loggers for the command-line
// tools in this module.
//
// Defaults suit a CLI: human-readable text format at INFO level, written to
// stderr so that stdout stays clean for token output that might be piped.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	)
package logger
